package modelclient

import (
	"context"

	"github.com/clipframe/clipframe/pkg/models"
)

// GenerationRequest asks the hosted model to produce front-end code for a
// source frame. Measurements, when present, are threaded in as hard layout
// hints.
type GenerationRequest struct {
	SourceURL    string              `json:"source_url"`
	StyleHint    string              `json:"style_hint,omitempty"`
	Measurements *models.Measurement `json:"measurements,omitempty"`
}

// GenerationResponse is the raw generation payload. Title and RenderURL are
// best-effort fields the model may omit.
type GenerationResponse struct {
	Code      string `json:"code"`
	Title     string `json:"title,omitempty"`
	RenderURL string `json:"render_url,omitempty"`
}

// MeasureRequest asks the vision capability for layout/style measurements of
// one image. An empty Categories slice requests all categories in a single
// call.
type MeasureRequest struct {
	ImageURL   string   `json:"image_url"`
	MimeType   string   `json:"mime_type"`
	Categories []string `json:"categories,omitempty"`
}

// RawMeasurement mirrors models.Measurement with every field optional. The
// vision capability returns loosely shaped JSON; the surveyor's defaulting
// step converts this into a fully populated Measurement before anything
// downstream sees it.
type RawMeasurement struct {
	ImageDimensions *models.Dimensions `json:"image_dimensions,omitempty"`
	Grid            *models.Grid       `json:"grid,omitempty"`
	Spacing         *models.Spacing    `json:"spacing,omitempty"`
	Colors          *models.Colors     `json:"colors,omitempty"`
	Typography      *models.Typography `json:"typography,omitempty"`
	Components      []models.Component `json:"components,omitempty"`
	Confidence      *float64           `json:"confidence,omitempty"`
}

// CompareRequest asks the vision capability for a structured comparison of an
// original frame against a rendered result.
type CompareRequest struct {
	OriginalURL string `json:"original_url"`
	ProducedURL string `json:"produced_url"`
	MimeType    string `json:"mime_type"`
}

// RawComparison is the loosely shaped comparison payload.
type RawComparison struct {
	SSIMScore          *float64                   `json:"ssim_score,omitempty"`
	Issues             []models.Issue             `json:"issues,omitempty"`
	AutoFixSuggestions []models.AutoFixSuggestion `json:"auto_fix_suggestions,omitempty"`
	DiffRegions        []models.DiffRegion        `json:"diff_regions,omitempty"`
}

// Generator defines the content-generation capability.
type Generator interface {
	Generate(ctx context.Context, req *GenerationRequest) (*GenerationResponse, error)
}

// Measurer defines the vision measurement capability.
type Measurer interface {
	Measure(ctx context.Context, req *MeasureRequest) (*RawMeasurement, error)
}

// Comparer defines the vision comparison capability.
type Comparer interface {
	Compare(ctx context.Context, req *CompareRequest) (*RawComparison, error)
}
