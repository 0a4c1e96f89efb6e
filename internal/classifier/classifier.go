package classifier

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the classifier artifacts are not loaded or the
// runtime failed; callers must propagate this rather than substitute a score.
var ErrUnavailable = errors.New("classifier unavailable")

// Prediction is the classifier's probability distribution over the two
// classes for one input text. Implementations normalize so the two
// probabilities sum to 1.
type Prediction struct {
	ProbFake float64 `json:"probability_fake"`
	ProbReal float64 `json:"probability_real"`
}

// Classifier scores raw text. Implementations must be safe for concurrent
// use; the service calls Predict once per analysis request.
type Classifier interface {
	Predict(ctx context.Context, text string) (Prediction, error)
}
