package orchestration

import (
	"testing"

	"github.com/agbru/recipsum/internal/progress"
	"github.com/agbru/recipsum/internal/reduce"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	if NewProgressAggregator(0) != nil {
		t.Error("NewProgressAggregator(0) should return nil")
	}
	if NewProgressAggregator(-1) != nil {
		t.Error("NewProgressAggregator(-1) should return nil")
	}
	if a := NewProgressAggregator(3); a == nil || a.NumReducers() != 3 {
		t.Error("NewProgressAggregator(3) should track 3 reducers")
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	a := NewProgressAggregator(2)

	if avg := a.Update(progress.Update{ReducerIndex: 0, Value: 0.5}); avg != 0.25 {
		t.Errorf("average after first update = %v, want 0.25", avg)
	}
	if avg := a.Update(progress.Update{ReducerIndex: 1, Value: 1.0}); avg != 0.75 {
		t.Errorf("average after second update = %v, want 0.75", avg)
	}

	t.Run("regressing fraction is ignored", func(t *testing.T) {
		if avg := a.Update(progress.Update{ReducerIndex: 1, Value: 0.2}); avg != 0.75 {
			t.Errorf("average after regressing update = %v, want 0.75", avg)
		}
	})

	t.Run("out-of-range index is ignored", func(t *testing.T) {
		if avg := a.Update(progress.Update{ReducerIndex: 7, Value: 1.0}); avg != 0.75 {
			t.Errorf("average after out-of-range update = %v, want 0.75", avg)
		}
	})
}

func TestGetReducersToRun(t *testing.T) {
	t.Parallel()
	factory := reduce.NewDefaultFactory()

	t.Run("all selects every strategy", func(t *testing.T) {
		t.Parallel()
		if got := GetReducersToRun(AlgoAll, factory); len(got) != len(factory.GetAll()) {
			t.Errorf("expected %d reducers, got %d", len(factory.GetAll()), len(got))
		}
	})

	t.Run("named strategy selects one", func(t *testing.T) {
		t.Parallel()
		got := GetReducersToRun(reduce.StrategyForkJoin, factory)
		if len(got) != 1 || got[0].Name() != "Fork/Join" {
			t.Errorf("expected single Fork/Join reducer, got %v", got)
		}
	})

	t.Run("unknown name falls back to all", func(t *testing.T) {
		t.Parallel()
		if got := GetReducersToRun("quantum", factory); len(got) != len(factory.GetAll()) {
			t.Errorf("expected fallback to all reducers, got %d", len(got))
		}
	})
}
