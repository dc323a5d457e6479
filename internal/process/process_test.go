package process

import "testing"

func TestCheckerFunc(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() bool
		expected bool
	}{
		{"ReportsBusy", func() bool { return true }, true},
		{"ReportsIdle", func() bool { return false }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckerFunc(tc.fn).IsBusy(); got != tc.expected {
				t.Errorf("IsBusy() = %t, expected %t", got, tc.expected)
			}
		})
	}
}

func TestIsClaudeRunningNeverPanics(t *testing.T) {
	// The real scan is heuristic; the only contract unit tests can hold it
	// to is that it returns cleanly on any host.
	_ = IsClaudeRunning()
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"PID", "1234", true},
		{"Zero", "0", true},
		{"Empty", "", false},
		{"Name", "self", false},
		{"Mixed", "12ab", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNumeric(tc.input); got != tc.expected {
				t.Errorf("isNumeric(%q) = %t, expected %t", tc.input, got, tc.expected)
			}
		})
	}
}
