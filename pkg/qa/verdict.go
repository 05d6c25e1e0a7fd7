package qa

import "github.com/clipframe/clipframe/pkg/models"

// Verdict thresholds. The verdict is a deterministic function of the score
// and the high-severity issue count, never the capability's own judgment, so
// it stays stable across model versions.
const (
	passThreshold       = 0.95
	needsFixesThreshold = 0.85
	maxHighIssuesForFix = 3
)

// ComputeVerdict classifies a comparison from its SSIM score and issue list.
func ComputeVerdict(ssimScore float64, issues []models.Issue) models.Verdict {
	highCount := 0
	for _, issue := range issues {
		if issue.Severity == models.SeverityHigh {
			highCount++
		}
	}

	switch {
	case ssimScore >= passThreshold && highCount == 0:
		return models.VerdictPass
	case ssimScore >= needsFixesThreshold && highCount <= maxHighIssuesForFix:
		return models.VerdictNeedsFixes
	default:
		return models.VerdictMajorIssues
	}
}
