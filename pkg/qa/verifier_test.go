package qa

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/models"
)

type fakeComparer struct {
	calls   int
	handler func(req *modelclient.CompareRequest) (*modelclient.RawComparison, error)
}

func (f *fakeComparer) Compare(ctx context.Context, req *modelclient.CompareRequest) (*modelclient.RawComparison, error) {
	f.calls++
	return f.handler(req)
}

type fakeFetcher struct {
	images map[string][]byte
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	img, ok := f.images[url]
	if !ok {
		return nil, errors.New("object not found")
	}
	return img, nil
}

func TestVerify(t *testing.T) {
	gray := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	t.Run("Quick Mode Skips The Capability", func(t *testing.T) {
		img := encodePNG(t, solidImage(64, 64, gray))
		fetcher := &fakeFetcher{images: map[string][]byte{
			"https://cdn.example/frame.png":  img,
			"https://cdn.example/render.png": img,
		}}
		comparer := &fakeComparer{handler: func(req *modelclient.CompareRequest) (*modelclient.RawComparison, error) {
			return nil, errors.New("should not be called")
		}}
		v := New(comparer, fetcher, slog.Default())

		verification, err := v.Verify(context.Background(), "https://cdn.example/frame.png", "https://cdn.example/render.png", "image/png", ModeQuick)

		assert.NoError(t, err)
		assert.Equal(t, 0, comparer.calls)
		assert.InDelta(t, 1.0, verification.SSIMScore, 1e-6)
		assert.Equal(t, models.VerdictPass, verification.Verdict)
		assert.Empty(t, verification.Issues)
	})

	t.Run("Full Mode Folds In Capability Findings", func(t *testing.T) {
		img := encodePNG(t, solidImage(64, 64, gray))
		fetcher := &fakeFetcher{images: map[string][]byte{
			"https://cdn.example/frame.png":  img,
			"https://cdn.example/render.png": img,
		}}
		comparer := &fakeComparer{handler: func(req *modelclient.CompareRequest) (*modelclient.RawComparison, error) {
			assert.Equal(t, "https://cdn.example/frame.png", req.OriginalURL)
			return &modelclient.RawComparison{
				Issues: []models.Issue{{Type: "color", Severity: models.SeverityHigh, Description: "primary button color mismatch"}},
				AutoFixSuggestions: []models.AutoFixSuggestion{
					{Selector: ".btn-primary", Property: "background-color", SuggestedValue: "#3b82f6", Confidence: 0.9},
				},
			}, nil
		}}
		v := New(comparer, fetcher, slog.Default())

		verification, err := v.Verify(context.Background(), "https://cdn.example/frame.png", "https://cdn.example/render.png", "image/png", ModeFull)

		assert.NoError(t, err)
		assert.Equal(t, 1, comparer.calls)
		// One high-severity issue drops an otherwise passing score to needs_fixes.
		assert.Equal(t, models.VerdictNeedsFixes, verification.Verdict)
		assert.Len(t, verification.Issues, 1)
		assert.Len(t, verification.AutoFixSuggestions, 1)
	})

	t.Run("Fetch Failure", func(t *testing.T) {
		fetcher := &fakeFetcher{images: map[string][]byte{}}
		comparer := &fakeComparer{handler: func(req *modelclient.CompareRequest) (*modelclient.RawComparison, error) {
			return &modelclient.RawComparison{}, nil
		}}
		v := New(comparer, fetcher, slog.Default())

		_, err := v.Verify(context.Background(), "https://cdn.example/frame.png", "https://cdn.example/render.png", "image/png", ModeQuick)

		assert.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("Capability Failure In Full Mode", func(t *testing.T) {
		img := encodePNG(t, solidImage(64, 64, gray))
		fetcher := &fakeFetcher{images: map[string][]byte{
			"https://cdn.example/frame.png":  img,
			"https://cdn.example/render.png": img,
		}}
		comparer := &fakeComparer{handler: func(req *modelclient.CompareRequest) (*modelclient.RawComparison, error) {
			return nil, errors.New("upstream 503")
		}}
		v := New(comparer, fetcher, slog.Default())

		_, err := v.Verify(context.Background(), "https://cdn.example/frame.png", "https://cdn.example/render.png", "image/png", ModeFull)

		assert.ErrorIs(t, err, ErrVerificationFailed)
	})
}
