package qa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/models"
)

// ErrVerificationFailed indicates the comparison phase failed outright. It
// never blocks job completion; the orchestrator records jobs without a verdict
// instead.
var ErrVerificationFailed = errors.New("verification failed")

// Mode selects how deep the comparison goes.
type Mode string

const (
	// ModeQuick computes only the SSIM score and a coarse verdict.
	ModeQuick Mode = "quick"
	// ModeFull additionally classifies issues and proposes fixes via the
	// vision capability.
	ModeFull Mode = "full"
)

// Verifier compares an original frame against a rendered result. The SSIM
// score is always computed locally from the fetched pixels; the vision
// capability contributes the issue classification in full mode.
type Verifier struct {
	comparer modelclient.Comparer
	fetcher  modelclient.ImageFetcher
	logger   *slog.Logger
}

func New(comparer modelclient.Comparer, fetcher modelclient.ImageFetcher, logger *slog.Logger) *Verifier {
	return &Verifier{
		comparer: comparer,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Verify runs the comparison phase and returns a verification with its
// verdict derived from the score and high-severity issue count.
func (v *Verifier) Verify(ctx context.Context, originalURL string, producedURL string, mimeType string, mode Mode) (*models.Verification, error) {
	// Step 1: Fetch both images and score them locally.
	score, err := v.score(ctx, originalURL, producedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	verification := &models.Verification{
		SSIMScore:          score,
		Issues:             []models.Issue{},
		AutoFixSuggestions: []models.AutoFixSuggestion{},
		DiffRegions:        []models.DiffRegion{},
	}

	// Step 2: In full mode, ask the vision capability for a structured
	// comparison and fold its findings in.
	if mode == ModeFull {
		raw, err := v.comparer.Compare(ctx, &modelclient.CompareRequest{
			OriginalURL: originalURL,
			ProducedURL: producedURL,
			MimeType:    mimeType,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
		}
		if raw.Issues != nil {
			verification.Issues = raw.Issues
		}
		if raw.AutoFixSuggestions != nil {
			verification.AutoFixSuggestions = raw.AutoFixSuggestions
		}
		if raw.DiffRegions != nil {
			verification.DiffRegions = raw.DiffRegions
		}
	}

	// Step 3: Classify.
	verification.Verdict = ComputeVerdict(verification.SSIMScore, verification.Issues)

	v.logger.Info("Verification complete",
		"mode", string(mode),
		"ssim_score", verification.SSIMScore,
		"verdict", string(verification.Verdict),
		"issues", len(verification.Issues))

	return verification, nil
}

func (v *Verifier) score(ctx context.Context, originalURL string, producedURL string) (float64, error) {
	original, err := v.fetcher.Fetch(ctx, originalURL)
	if err != nil {
		return 0, fmt.Errorf("fetch original: %w", err)
	}
	produced, err := v.fetcher.Fetch(ctx, producedURL)
	if err != nil {
		return 0, fmt.Errorf("fetch produced: %w", err)
	}
	return ComputeSSIM(original, produced)
}
