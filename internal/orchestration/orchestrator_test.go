package orchestration

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/recipsum/internal/errors"
	"github.com/agbru/recipsum/internal/reduce"
)

// StubResultPresenter is a no-op implementation of ResultPresenter and
// ErrorHandler for testing the orchestration logic without a real UI.
type StubResultPresenter struct{}

func (StubResultPresenter) PresentComparisonTable(results []ReductionResult, out io.Writer) {}
func (StubResultPresenter) PresentResult(result ReductionResult, opts PresentationOptions, out io.Writer) {
}
func (StubResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.ExitErrorGeneric
}

// TestExecuteReductions verifies that the orchestrator runs every strategy
// and aggregates their results.
func TestExecuteReductions(t *testing.T) {
	t.Parallel()
	input := []float64{1, 2, 4}

	tests := []struct {
		name        string
		sum         float64
		err         error
		expectError bool
	}{
		{name: "Single success", sum: 1.75, err: nil, expectError: false},
		{name: "Single failure", sum: 0, err: errors.New("mock error"), expectError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := NewMockReducer(ctrl)
			mock.EXPECT().Name().Return("Mock").AnyTimes()
			mock.EXPECT().
				Reduce(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.sum, tt.err)

			results := ExecuteReductions(context.Background(), []reduce.Reducer{mock}, input, reduce.Options{}, NullProgressReporter{}, io.Discard)

			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			if tt.expectError && results[0].Err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError {
				if results[0].Err != nil {
					t.Fatalf("unexpected error: %v", results[0].Err)
				}
				if results[0].Sum != tt.sum {
					t.Errorf("Sum = %v, want %v", results[0].Sum, tt.sum)
				}
			}
		})
	}
}

// TestExecuteReductions_RealStrategies runs the actual registered strategies
// end to end and checks their cross-strategy agreement.
func TestExecuteReductions_RealStrategies(t *testing.T) {
	t.Parallel()
	input := make([]float64, 10000)
	for i := range input {
		input[i] = float64(i%13) + 1
	}

	reducers := reduce.NewDefaultFactory().GetAll()
	results := ExecuteReductions(context.Background(), reducers, input, reduce.Options{NumTasks: 4, LeafThreshold: 512}, NullProgressReporter{}, io.Discard)

	if len(results) != len(reducers) {
		t.Fatalf("expected %d results, got %d", len(reducers), len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("%s: unexpected error: %v", res.Name, res.Err)
		}
		if !resultsConsistent(res.Sum, results[0].Sum) {
			t.Errorf("%s: sum %v inconsistent with %s: %v", res.Name, res.Sum, results[0].Name, results[0].Sum)
		}
	}
}

// TestAnalyzeComparisonResults verifies the comparison logic: consistent
// results, failures, and mismatch detection.
func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		results  []ReductionResult
		wantCode int
	}{
		{
			name: "Consistent results succeed",
			results: []ReductionResult{
				{Name: "A", Sum: 1.75, Duration: time.Millisecond},
				{Name: "B", Sum: 1.75 + 1e-12, Duration: 2 * time.Millisecond},
			},
			wantCode: apperrors.ExitSuccess,
		},
		{
			name: "Mismatch detected",
			results: []ReductionResult{
				{Name: "A", Sum: 1.75, Duration: time.Millisecond},
				{Name: "B", Sum: 2.5, Duration: 2 * time.Millisecond},
			},
			wantCode: apperrors.ExitErrorMismatch,
		},
		{
			name: "All failures report error",
			results: []ReductionResult{
				{Name: "A", Err: errors.New("boom")},
			},
			wantCode: apperrors.ExitErrorGeneric,
		},
		{
			name: "Partial failure with consistent successes",
			results: []ReductionResult{
				{Name: "A", Err: errors.New("boom")},
				{Name: "B", Sum: 3.5, Duration: time.Millisecond},
			},
			wantCode: apperrors.ExitSuccess,
		},
		{
			name: "Matching infinities are consistent",
			results: []ReductionResult{
				{Name: "A", Sum: math.Inf(1), Duration: time.Millisecond},
				{Name: "B", Sum: math.Inf(1), Duration: 2 * time.Millisecond},
			},
			wantCode: apperrors.ExitSuccess,
		},
		{
			name: "Opposite infinities mismatch",
			results: []ReductionResult{
				{Name: "A", Sum: math.Inf(1), Duration: time.Millisecond},
				{Name: "B", Sum: math.Inf(-1), Duration: 2 * time.Millisecond},
			},
			wantCode: apperrors.ExitErrorMismatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code := AnalyzeComparisonResults(tt.results, PresentationOptions{}, StubResultPresenter{}, StubResultPresenter{}, io.Discard)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestResultsConsistent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.75, 1.75, true},
		{"within epsilon", 1.0, 1.0 + 1e-12, true},
		{"outside epsilon", 1.0, 1.0001, false},
		{"both NaN", math.NaN(), math.NaN(), true},
		{"NaN vs finite", math.NaN(), 1.0, false},
		{"same-sign infinity", math.Inf(1), math.Inf(1), true},
		{"opposite infinity", math.Inf(1), math.Inf(-1), false},
		{"infinity vs finite", math.Inf(1), 1.0, false},
		{"both zero", 0, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resultsConsistent(tt.a, tt.b); got != tt.want {
				t.Errorf("resultsConsistent(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
