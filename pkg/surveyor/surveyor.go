package surveyor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/models"
)

// ErrMeasurementFailed indicates the measurement capability itself failed.
// Incomplete-but-successful responses are not failures; they are filled in by
// the defaulting step instead.
var ErrMeasurementFailed = errors.New("measurement failed")

// Mode selects how measurement categories are extracted.
type Mode string

const (
	// ModeSequential issues a single measure call covering every category.
	ModeSequential Mode = "sequential"
	// ModeParallel issues one measure call per category and merges the
	// results. Lower latency, more external calls.
	ModeParallel Mode = "parallel"
)

// Measurement categories recognized by the vision capability.
const (
	CategoryGrid       = "grid"
	CategorySpacing    = "spacing"
	CategoryColors     = "colors"
	CategoryTypography = "typography"
	CategoryComponents = "components"
)

var allCategories = []string{
	CategoryGrid,
	CategorySpacing,
	CategoryColors,
	CategoryTypography,
	CategoryComponents,
}

// Surveyor extracts structured layout and style measurements from a single
// source frame. Its output is always fully shaped: every field the capability
// omits is filled with a documented default before being returned.
type Surveyor struct {
	measurer modelclient.Measurer
	mode     Mode
	logger   *slog.Logger
}

func New(measurer modelclient.Measurer, mode Mode, logger *slog.Logger) *Surveyor {
	if mode != ModeParallel {
		mode = ModeSequential
	}
	return &Surveyor{
		measurer: measurer,
		mode:     mode,
		logger:   logger,
	}
}

// Measure runs the measurement phase for one image and returns a fully
// populated result. A capability failure returns ErrMeasurementFailed; callers
// treat that as non-fatal and proceed without measurements.
func (s *Surveyor) Measure(ctx context.Context, imageURL string, mimeType string) (*models.Measurement, error) {
	var (
		raw *modelclient.RawMeasurement
		err error
	)

	// Step 1: Extract raw measurements, in one call or one per category.
	switch s.mode {
	case ModeParallel:
		raw, err = s.measureParallel(ctx, imageURL, mimeType)
	default:
		raw, err = s.measurer.Measure(ctx, &modelclient.MeasureRequest{
			ImageURL: imageURL,
			MimeType: mimeType,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMeasurementFailed, err)
	}

	// Step 2: Fill anything the capability omitted so downstream consumers
	// never branch on presence.
	result := ApplyDefaults(raw)

	s.logger.Info("Measurement complete",
		"mode", string(s.mode),
		"confidence", result.Confidence,
		"components", len(result.Components))

	return result, nil
}

// measureParallel fans out one measure call per category and merges the
// responses by key. All calls must succeed before the merge.
func (s *Surveyor) measureParallel(ctx context.Context, imageURL string, mimeType string) (*modelclient.RawMeasurement, error) {
	results := make([]*modelclient.RawMeasurement, len(allCategories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range allCategories {
		i, category := i, category
		g.Go(func() error {
			raw, err := s.measurer.Measure(gctx, &modelclient.MeasureRequest{
				ImageURL:   imageURL,
				MimeType:   mimeType,
				Categories: []string{category},
			})
			if err != nil {
				return fmt.Errorf("measure %s: %w", category, err)
			}
			results[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in category order. Each response should only carry its own
	// category, but first-populated wins if the capability over-reports.
	merged := &modelclient.RawMeasurement{}
	var confidences []float64
	for _, raw := range results {
		if raw == nil {
			continue
		}
		if merged.ImageDimensions == nil {
			merged.ImageDimensions = raw.ImageDimensions
		}
		if merged.Grid == nil {
			merged.Grid = raw.Grid
		}
		if merged.Spacing == nil {
			merged.Spacing = raw.Spacing
		}
		if merged.Colors == nil {
			merged.Colors = raw.Colors
		}
		if merged.Typography == nil {
			merged.Typography = raw.Typography
		}
		if merged.Components == nil {
			merged.Components = raw.Components
		}
		if raw.Confidence != nil {
			confidences = append(confidences, *raw.Confidence)
		}
	}
	if len(confidences) > 0 {
		var sum float64
		for _, c := range confidences {
			sum += c
		}
		avg := sum / float64(len(confidences))
		merged.Confidence = &avg
	}

	return merged, nil
}
