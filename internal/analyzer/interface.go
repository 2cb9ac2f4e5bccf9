package analyzer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze normalizes, scores and ranks a batch of raw task records.
	// A dependency cycle is reported through AnalyzeOutput.Cycle, not as an error.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Suggest returns the top entries of the ranked batch with a one-line reason.
	// A dependency cycle is returned as a *CycleError.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
}
