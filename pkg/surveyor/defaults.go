package surveyor

import (
	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/models"
)

// Defaults applied when the measurement capability omits a field: a standard
// desktop canvas, a single-column grid with no gutters, zero paddings, a
// neutral gray palette, and a base type scale.
var (
	defaultDimensions = models.Dimensions{Width: 1280, Height: 800}

	defaultGrid = models.Grid{Columns: 1, Gap: 0}

	defaultColors = models.Colors{
		Background: "#ffffff",
		Surface:    "#f5f5f5",
		Primary:    "#333333",
		Text:       "#111111",
		MutedText:  "#666666",
		Border:     "#e0e0e0",
	}

	defaultTypography = models.Typography{
		H1:    32,
		H2:    24,
		H3:    20,
		Body:  16,
		Small: 13,
	}
)

// expectedFields is the number of top-level measurement fields used when
// computing the completeness-ratio confidence fallback.
const expectedFields = 6

// ApplyDefaults converts a raw, possibly partial measurement into a fully
// populated one. Confidence is taken from the capability when reported,
// otherwise computed as the fraction of expected fields present before
// defaulting.
func ApplyDefaults(raw *modelclient.RawMeasurement) *models.Measurement {
	if raw == nil {
		raw = &modelclient.RawMeasurement{}
	}

	result := &models.Measurement{
		ImageDimensions: defaultDimensions,
		Grid:            defaultGrid,
		Colors:          defaultColors,
		Typography:      defaultTypography,
		Components:      []models.Component{},
	}

	present := 0
	if raw.ImageDimensions != nil {
		result.ImageDimensions = *raw.ImageDimensions
		present++
	}
	if raw.Grid != nil {
		result.Grid = *raw.Grid
		present++
	}
	if raw.Spacing != nil {
		result.Spacing = *raw.Spacing
		present++
	}
	if raw.Colors != nil {
		result.Colors = *raw.Colors
		present++
	}
	if raw.Typography != nil {
		result.Typography = *raw.Typography
		present++
	}
	if raw.Components != nil {
		result.Components = raw.Components
		present++
	}

	if raw.Confidence != nil {
		result.Confidence = *raw.Confidence
	} else {
		result.Confidence = float64(present) / float64(expectedFields)
	}

	return result
}
