// CLI integration tests for d4count.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the d4count binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "d4count-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	d4countBin = filepath.Join(tmpDir, "d4count")

	cmd := exec.Command("go", "build", "-o", d4countBin, "./cmd/d4count")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunD4count("version")
	if !strings.HasPrefix(result.Stdout, "d4count ") {
		t.Errorf("unexpected version output: %q", result.Stdout)
	}
}

func TestSplittingTable(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunD4count("splitting")

	for _, want := range []string{
		"I_p",
		"-- unramified --",
		"-- tame, lacks central inertia --",
		"-- tame, has central inertia --",
		"-- wild, has central inertia --",
		"(1 1 1 1)",
		"(1^4)",
	} {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("splitting output missing %q\n%s", want, result.Stdout)
		}
	}
}

func TestSplittingLatex(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunD4count("splitting", "--latex")
	if !strings.Contains(result.Stdout, `\begin{tabular}`) {
		t.Errorf("expected LaTeX output, got:\n%s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, `\varsigma_p(K_1)`) {
		t.Errorf("expected column headers, got:\n%s", result.Stdout)
	}
}

func TestSplittingFrobenius(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunD4count("splitting", "--frobenius")

	for _, want := range []string{
		"splitting type",
		"(1 1 1 1)\t", // tabwriter may pad; just check the label appears
		"total",
	} {
		if !strings.Contains(result.Stdout, strings.TrimSuffix(want, "\t")) {
			t.Errorf("frobenius output missing %q\n%s", want, result.Stdout)
		}
	}
	if !strings.Contains(result.Stdout, "8") {
		t.Errorf("frobenius multiplicities should total 8:\n%s", result.Stdout)
	}
}

func TestExpectDefaultSweep(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunD4count("expect")

	for _, want := range []string{
		"total weight: 5/2",
		"12",
		"137",
		"1417",
		"14255",
	} {
		if !strings.Contains(result.Stdout, want) {
			t.Errorf("expect output missing %q\n%s", want, result.Stdout)
		}
	}
}

func TestExpectCustomBounds(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunD4count("expect", "--bounds", "1,100", "--prime-limit", "100")

	if !strings.Contains(result.Stdout, "137") {
		t.Errorf("expected count at X=100 missing:\n%s", result.Stdout)
	}
}

func TestExpectInvalidBounds(t *testing.T) {
	env := NewTestEnv(t)

	tests := []struct {
		name   string
		bounds string
	}{
		{name: "non-positive", bounds: "0"},
		{name: "descending", bounds: "100,10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := env.RunD4count("expect", "--bounds", tt.bounds)
			if result.ExitCode != 1 {
				t.Errorf("expected exit code 1, got %d\nstderr: %s", result.ExitCode, result.Stderr)
			}
			if result.Stderr == "" {
				t.Error("expected an error message on stderr")
			}
		})
	}
}

func TestExpectBoundBeyondPrimeLimit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunD4count("expect", "--bounds", "1000", "--prime-limit", "100")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d\nstderr: %s", result.ExitCode, result.Stderr)
	}
}

func TestConfigFileCreatedOnFirstRun(t *testing.T) {
	env := NewTestEnv(t)

	env.MustRunD4count("version")

	configPath := filepath.Join(env.ConfigDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config.yaml not created on first run")
	}
}

func TestConfigBoundsRespected(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteConfig("prime_limit: 50\nbounds: [5, 50]\nlatex: false\n")

	result := env.MustRunD4count("expect")

	lines := strings.Split(result.Stdout, "\n")
	var sweepLines []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "5 ") || strings.HasPrefix(trimmed, "50 ") {
			sweepLines = append(sweepLines, trimmed)
		}
	}
	if len(sweepLines) != 2 {
		t.Errorf("expected sweep rows for bounds 5 and 50, got:\n%s", result.Stdout)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	env := NewTestEnv(t)

	quiet := env.MustRunD4count("splitting")
	if quiet.Stderr != "" {
		t.Errorf("expected silent stderr without --verbose, got: %s", quiet.Stderr)
	}

	verbose := env.MustRunD4count("splitting", "--verbose")
	if verbose.Stderr == "" {
		t.Error("expected diagnostics on stderr with --verbose")
	}
	if verbose.Stdout != quiet.Stdout {
		t.Error("verbose logging must not change stdout")
	}
}
