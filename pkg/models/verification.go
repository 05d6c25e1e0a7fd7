package models

// Verdict is the three-way classification of a comparison between an original
// frame and a rendered result.
type Verdict string

const (
	VerdictPass        Verdict = "pass"
	VerdictNeedsFixes  Verdict = "needs_fixes"
	VerdictMajorIssues Verdict = "major_issues"
)

// Severity grades a single discrepancy.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is one classified discrepancy between the original and produced images.
type Issue struct {
	Type        string   `json:"type" dynamodbav:"type"`
	Severity    Severity `json:"severity" dynamodbav:"severity"`
	Location    string   `json:"location" dynamodbav:"location"`
	Description string   `json:"description" dynamodbav:"description"`
	Expected    string   `json:"expected" dynamodbav:"expected"`
	Actual      string   `json:"actual" dynamodbav:"actual"`
}

// AutoFixSuggestion is a proposed CSS correction for one issue.
type AutoFixSuggestion struct {
	Selector       string  `json:"selector" dynamodbav:"selector"`
	Property       string  `json:"property" dynamodbav:"property"`
	SuggestedValue string  `json:"suggested_value" dynamodbav:"suggested_value"`
	Confidence     float64 `json:"confidence" dynamodbav:"confidence"`
}

// DiffRegion is one area of the image pair with a notable pixel difference.
type DiffRegion struct {
	BoundingBox    Box     `json:"bounding_box" dynamodbav:"bounding_box"`
	DiffPercentage float64 `json:"diff_percentage" dynamodbav:"diff_percentage"`
	Category       string  `json:"category" dynamodbav:"category"`
}

// Verification is the output of the QA comparison phase. The Verdict is always
// derived from SSIMScore and the high-severity issue count, never set directly.
type Verification struct {
	SSIMScore          float64             `json:"ssim_score" dynamodbav:"ssim_score"`
	Verdict            Verdict             `json:"verdict" dynamodbav:"verdict"`
	Issues             []Issue             `json:"issues" dynamodbav:"issues"`
	AutoFixSuggestions []AutoFixSuggestion `json:"auto_fix_suggestions" dynamodbav:"auto_fix_suggestions"`
	DiffRegions        []DiffRegion        `json:"diff_regions" dynamodbav:"diff_regions"`
}
