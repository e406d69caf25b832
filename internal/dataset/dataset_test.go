package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/agbru/recipsum/internal/errors"
)

func TestGenerate_Ones(t *testing.T) {
	t.Parallel()
	data, err := Generate(10, DistOnes, 1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(data) != 10 {
		t.Fatalf("len = %d, want 10", len(data))
	}
	for i, v := range data {
		if v != 1.0 {
			t.Errorf("data[%d] = %v, want 1.0", i, v)
		}
	}
}

func TestGenerate_UniformDeterministic(t *testing.T) {
	t.Parallel()
	a, err := Generate(1000, DistUniform, 42)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := Generate(1000, DistUniform, 42)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different values at index %d: %v vs %v", i, a[i], b[i])
		}
		if a[i] < 0.5 || a[i] >= 1.5 {
			t.Fatalf("data[%d] = %v, outside [0.5, 1.5)", i, a[i])
		}
	}
}

func TestGenerate_UniformSeedMatters(t *testing.T) {
	t.Parallel()
	a, _ := Generate(100, DistUniform, 1)
	b, _ := Generate(100, DistUniform, 2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical vectors")
	}
}

func TestGenerate_Ramp(t *testing.T) {
	t.Parallel()
	data, err := Generate(300, DistRamp, 0)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if data[0] != 1 || data[250] != 251 || data[251] != 1 {
		t.Errorf("ramp cycle wrong: data[0]=%v data[250]=%v data[251]=%v", data[0], data[250], data[251])
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	if _, err := Generate(-1, DistOnes, 0); err == nil {
		t.Error("negative size should fail")
	}
	if _, err := Generate(10, "gaussian", 0); err == nil {
		t.Error("unknown distribution should fail")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "values.txt")
	content := "# comment\n1.0\n\n2.5\n0.125\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	data, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []float64{1.0, 2.5, 0.125}
	if len(data) != len(want) {
		t.Fatalf("len = %d, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("1.0\nnot-a-number\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed value")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	if err := Validate([]float64{1, 2, 3}); err != nil {
		t.Errorf("nonzero vector should validate, got %v", err)
	}

	err := Validate([]float64{1, 0, 3})
	if err == nil {
		t.Fatal("zero element should fail validation")
	}
	var valErr apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	s := Describe([]float64{1, 2, 3, 4})
	if s.Count != 4 || s.Min != 1 || s.Max != 4 || s.Mean != 2.5 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if Describe(nil).String() != "empty dataset" {
		t.Error("empty dataset should describe itself as such")
	}
}
