package surveyor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/models"
)

type fakeMeasurer struct {
	mu       sync.Mutex
	requests []*modelclient.MeasureRequest
	handler  func(req *modelclient.MeasureRequest) (*modelclient.RawMeasurement, error)
}

func (f *fakeMeasurer) Measure(ctx context.Context, req *modelclient.MeasureRequest) (*modelclient.RawMeasurement, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.handler(req)
}

func floatPtr(v float64) *float64 { return &v }

func TestMeasureSequential(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		measurer := &fakeMeasurer{
			handler: func(req *modelclient.MeasureRequest) (*modelclient.RawMeasurement, error) {
				return &modelclient.RawMeasurement{
					Grid:       &models.Grid{Columns: 12, Gap: 24},
					Colors:     &models.Colors{Background: "#0a0a0a", Surface: "#171717", Primary: "#3b82f6", Text: "#fafafa", MutedText: "#a3a3a3", Border: "#262626"},
					Confidence: floatPtr(0.92),
				}, nil
			},
		}
		s := New(measurer, ModeSequential, slog.Default())

		result, err := s.Measure(context.Background(), "https://cdn.example/frame.png", "image/png")

		assert.NoError(t, err)
		assert.Len(t, measurer.requests, 1)
		assert.Empty(t, measurer.requests[0].Categories)
		assert.Equal(t, 12, result.Grid.Columns)
		assert.Equal(t, "#0a0a0a", result.Colors.Background)
		assert.Equal(t, 0.92, result.Confidence)
		// Omitted fields come back defaulted, never empty.
		assert.Equal(t, 1280, result.ImageDimensions.Width)
		assert.Equal(t, 16, result.Typography.Body)
		assert.NotNil(t, result.Components)
	})

	t.Run("Capability Failure", func(t *testing.T) {
		measurer := &fakeMeasurer{
			handler: func(req *modelclient.MeasureRequest) (*modelclient.RawMeasurement, error) {
				return nil, errors.New("upstream 500")
			},
		}
		s := New(measurer, ModeSequential, slog.Default())

		result, err := s.Measure(context.Background(), "https://cdn.example/frame.png", "image/png")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrMeasurementFailed)
	})
}

func TestMeasureParallel(t *testing.T) {
	t.Run("Merges One Call Per Category", func(t *testing.T) {
		measurer := &fakeMeasurer{
			handler: func(req *modelclient.MeasureRequest) (*modelclient.RawMeasurement, error) {
				switch req.Categories[0] {
				case CategoryGrid:
					return &modelclient.RawMeasurement{Grid: &models.Grid{Columns: 3, Gap: 16}, Confidence: floatPtr(0.9)}, nil
				case CategorySpacing:
					return &modelclient.RawMeasurement{Spacing: &models.Spacing{SidebarWidth: 240, NavHeight: 64}, Confidence: floatPtr(0.7)}, nil
				case CategoryTypography:
					return &modelclient.RawMeasurement{Typography: &models.Typography{H1: 40, H2: 28, H3: 22, Body: 18, Small: 14}}, nil
				case CategoryComponents:
					return &modelclient.RawMeasurement{Components: []models.Component{{Type: "navbar", Confidence: 0.95}}}, nil
				default:
					return &modelclient.RawMeasurement{}, nil
				}
			},
		}
		s := New(measurer, ModeParallel, slog.Default())

		result, err := s.Measure(context.Background(), "https://cdn.example/frame.png", "image/png")

		assert.NoError(t, err)
		assert.Len(t, measurer.requests, 5)
		assert.Equal(t, 3, result.Grid.Columns)
		assert.Equal(t, 240, result.Spacing.SidebarWidth)
		assert.Equal(t, 40, result.Typography.H1)
		assert.Len(t, result.Components, 1)
		// Colors call returned nothing, so the defaults fill in.
		assert.Equal(t, "#ffffff", result.Colors.Background)
		// Reported confidences are averaged.
		assert.InDelta(t, 0.8, result.Confidence, 1e-9)
	})

	t.Run("Any Category Failure Fails The Phase", func(t *testing.T) {
		measurer := &fakeMeasurer{
			handler: func(req *modelclient.MeasureRequest) (*modelclient.RawMeasurement, error) {
				if req.Categories[0] == CategoryColors {
					return nil, errors.New("rate limited")
				}
				return &modelclient.RawMeasurement{}, nil
			},
		}
		s := New(measurer, ModeParallel, slog.Default())

		_, err := s.Measure(context.Background(), "https://cdn.example/frame.png", "image/png")

		assert.ErrorIs(t, err, ErrMeasurementFailed)
		assert.Contains(t, err.Error(), "colors")
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Run("Empty Raw Gets Every Default", func(t *testing.T) {
		result := ApplyDefaults(&modelclient.RawMeasurement{})

		assert.Equal(t, models.Dimensions{Width: 1280, Height: 800}, result.ImageDimensions)
		assert.Equal(t, models.Grid{Columns: 1, Gap: 0}, result.Grid)
		assert.Equal(t, models.Spacing{}, result.Spacing)
		assert.Equal(t, "#ffffff", result.Colors.Background)
		assert.Equal(t, "#e0e0e0", result.Colors.Border)
		assert.Equal(t, 32, result.Typography.H1)
		assert.Equal(t, 13, result.Typography.Small)
		assert.Empty(t, result.Components)
		assert.Equal(t, 0.0, result.Confidence)
	})

	t.Run("Nil Raw Is Treated As Empty", func(t *testing.T) {
		result := ApplyDefaults(nil)

		assert.Equal(t, models.Grid{Columns: 1}, result.Grid)
		assert.Equal(t, 0.0, result.Confidence)
	})

	t.Run("Confidence Falls Back To Completeness Ratio", func(t *testing.T) {
		result := ApplyDefaults(&modelclient.RawMeasurement{
			Grid:       &models.Grid{Columns: 2},
			Colors:     &models.Colors{Background: "#fff"},
			Typography: &models.Typography{Body: 16},
		})

		// 3 of 6 expected fields were present before defaulting.
		assert.Equal(t, 0.5, result.Confidence)
	})

	t.Run("Reported Confidence Wins Over Ratio", func(t *testing.T) {
		result := ApplyDefaults(&modelclient.RawMeasurement{
			Grid:       &models.Grid{Columns: 2},
			Confidence: floatPtr(0.33),
		})

		assert.Equal(t, 0.33, result.Confidence)
	})
}
