package config

import "runtime"

// Threshold resolution chain (highest priority first):
//  1. CLI flag (-threshold)
//  2. Environment variable (RECIPSUM_THRESHOLD)
//  3. Adaptive hardware estimation (this file, opt-in via -adaptive)
//  4. Static engine default (reduce.DefaultLeafThreshold)

// ApplyAdaptiveThresholds replaces a zero leaf threshold with a core-count
// based estimate when adaptive mode is enabled. User-specified values are
// never touched. With adaptive mode off, a zero threshold falls through to
// the engine's fixed default, which keeps split trees reproducible across
// machines.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.Adaptive && cfg.Threshold == 0 {
		cfg.Threshold = EstimateLeafThreshold()
	}
	return cfg
}

// EstimateLeafThreshold provides a heuristic leaf threshold from the core
// count without running benchmarks. More cores justify finer leaves: the
// split tree must produce at least a few tasks per core before parallelism
// pays for its scheduling overhead.
func EstimateLeafThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 1 << 30 // Effectively sequential
	case numCPU <= 2:
		return 200_000
	case numCPU <= 4:
		return 100_000
	case numCPU <= 8:
		return 50_000 // Engine default
	case numCPU <= 16:
		return 25_000
	default:
		return 12_500 // High core count, aggressive splitting
	}
}
