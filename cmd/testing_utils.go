// Package cmd testing utilities shared between command tests: setting up a
// fake home directory, capturing output, and running commands through the
// real root command.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	logger "github.com/cenvtool/cenv/internal/logging"
	"github.com/cenvtool/cenv/internal/paths"
)

// setupTestHome points every command at a temporary home directory and
// restores the original state when the test finishes.
func setupTestHome(t *testing.T) *paths.Registry {
	t.Helper()

	homeOverride = t.TempDir()
	t.Cleanup(func() {
		homeOverride = ""
		ResetGlobalState()
	})

	return paths.New(homeOverride)
}

// runCommand executes the root command with the given arguments and returns
// everything written to stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to copy captured stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to copy captured stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// ResetGlobalState resets all command flag state to defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetCreateCommandState()
	resetUseCommandState()
	resetPublishCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
