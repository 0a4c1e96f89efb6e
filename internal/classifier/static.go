package classifier

import "context"

// Static is a deterministic classifier returning a fixed prediction, for
// tests and offline runs where no model bundle is available.
type Static struct {
	Pred Prediction
	Err  error
}

// NewStatic returns a Static classifier reporting the given probability of
// fake, with the real probability as its complement.
func NewStatic(probFake float64) *Static {
	return &Static{Pred: Prediction{ProbFake: probFake, ProbReal: 1 - probFake}}
}

func (s *Static) Predict(ctx context.Context, text string) (Prediction, error) {
	if s.Err != nil {
		return Prediction{}, s.Err
	}
	return s.Pred, nil
}
