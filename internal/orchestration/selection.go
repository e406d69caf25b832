package orchestration

import "github.com/agbru/recipsum/internal/reduce"

// AlgoAll selects every registered strategy for comparison mode.
const AlgoAll = "all"

// GetReducersToRun resolves the algo selector to the strategies that will
// execute. "all" selects every registered strategy; any other value selects
// the single named strategy. Unknown names fall back to comparison mode so
// the caller still gets a result (config validation rejects unknown names
// before this point in normal operation).
func GetReducersToRun(algo string, factory reduce.ReducerFactory) []reduce.Reducer {
	if algo == AlgoAll {
		return factory.GetAll()
	}
	if reducer, ok := factory.Get(algo); ok {
		return []reduce.Reducer{reducer}
	}
	return factory.GetAll()
}
