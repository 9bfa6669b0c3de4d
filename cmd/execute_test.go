package cmd

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		rootCmd.SetArgs([]string{"rules", "--nocolor"})
		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("Process exited with error: %v, output: %s", err, output)
	}

	if !strings.Contains(string(output), "MagicConstant") {
		t.Errorf("Expected the rules table in output, got: %s", output)
	}
}

func TestExecute_ProcessLevel_MissingFile(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		rootCmd.SetArgs([]string{"--nocolor", "/nonexistent/missing.c"})
		Execute() // exits with status 1

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_MissingFile")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exec.ExitError, got %T (%v)", err, err)
	}

	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}

	if !strings.Contains(string(output), "Error: file '/nonexistent/missing.c' not found") {
		t.Errorf("Expected not found message, got: %s", output)
	}
}
