// Package dataset builds and loads the input vectors fed to the reduction
// strategies. Generated vectors are deterministic for a given distribution
// and seed so that runs are reproducible across processes.
package dataset

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/recipsum/internal/errors"
)

// Distribution names accepted by Generate.
const (
	DistOnes    = "ones"
	DistUniform = "uniform"
	DistRamp    = "ramp"
)

// Generate builds a vector of the given size following the named
// distribution. The uniform distribution draws values in [0.5, 1.5) so no
// element is ever zero; the ramp distribution cycles over small positive
// integers.
func Generate(size int, dist string, seed int64) ([]float64, error) {
	if size < 0 {
		return nil, apperrors.NewConfigError("dataset size must not be negative, got %d", size)
	}

	data := make([]float64, size)
	switch dist {
	case DistOnes:
		for i := range data {
			data[i] = 1.0
		}
	case DistUniform:
		rng := rand.New(rand.NewSource(seed))
		for i := range data {
			data[i] = 0.5 + rng.Float64()
		}
	case DistRamp:
		for i := range data {
			data[i] = float64(i%251) + 1
		}
	default:
		return nil, apperrors.NewConfigError("unknown distribution %q", dist)
	}
	return data, nil
}

// Load reads a vector from a text file holding one float64 per line.
// Blank lines and lines starting with '#' are skipped.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "opening dataset file %s", path)
	}
	defer f.Close()

	var data []float64
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid value at %s:%d: %q", path, lineNo, line)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapError(err, "reading dataset file %s", path)
	}
	return data, nil
}

// Validate rejects vectors containing zero elements. A zero would poison the
// reciprocal sum with an infinity, which strict mode treats as a user error
// rather than a value to propagate.
func Validate(data []float64) error {
	for i, v := range data {
		if v == 0 {
			return apperrors.ValidationError{
				Field:   fmt.Sprintf("element %d", i),
				Message: "zero element would produce an infinite reciprocal",
			}
		}
	}
	return nil
}
