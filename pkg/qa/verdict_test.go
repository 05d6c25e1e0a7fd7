package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipframe/clipframe/pkg/models"
)

func highIssues(count int) []models.Issue {
	issues := make([]models.Issue, count)
	for i := range issues {
		issues[i] = models.Issue{Type: "layout", Severity: models.SeverityHigh}
	}
	return issues
}

func TestComputeVerdict(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		issues   []models.Issue
		expected models.Verdict
	}{
		{"High Score No Issues", 0.97, nil, models.VerdictPass},
		{"High Score Low Severity Only", 0.97, []models.Issue{{Severity: models.SeverityLow}, {Severity: models.SeverityMedium}}, models.VerdictPass},
		{"High Score One High Issue", 0.97, highIssues(1), models.VerdictNeedsFixes},
		{"Mid Score Few High Issues", 0.90, highIssues(2), models.VerdictNeedsFixes},
		{"Mid Score Too Many High Issues", 0.90, highIssues(4), models.VerdictMajorIssues},
		{"Low Score No Issues", 0.80, nil, models.VerdictMajorIssues},
		{"Pass Boundary", 0.95, nil, models.VerdictPass},
		{"Fix Boundary", 0.85, highIssues(3), models.VerdictNeedsFixes},
		{"Just Below Fix Boundary", 0.8499, nil, models.VerdictMajorIssues},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeVerdict(tc.score, tc.issues))
		})
	}
}
