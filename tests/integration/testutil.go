// Package integration provides CLI integration tests for d4count.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// d4countBin is the path to the built d4count binary.
	d4countBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build d4count: %v", buildErr)
	}
	if d4countBin == "" {
		t.Fatal("d4count binary not built (d4countBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
	}
}

// WriteConfig writes config.yaml into the environment's config directory.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()

	if err := os.MkdirAll(e.ConfigDir, 0o755); err != nil {
		e.t.Fatalf("failed to create config dir: %v", err)
	}
	path := filepath.Join(e.ConfigDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// CmdResult holds the result of a d4count command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunD4count executes the d4count CLI with the given arguments.
func (e *TestEnv) RunD4count(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(d4countBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run d4count: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunD4count executes the CLI and fails the test on a nonzero exit code.
func (e *TestEnv) MustRunD4count(args ...string) CmdResult {
	e.t.Helper()

	result := e.RunD4count(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("d4count %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
