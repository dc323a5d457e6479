package ui

import "testing"

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", "\n"},
		{"NoNewline", "done", "done\n"},
		{"HasNewline", "done\n", "done\n"},
		{"OnlyNewline", "\n", "\n"},
		{"MultiLine", "a\nb", "a\nb\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EnsureNewline(tc.input); got != tc.expected {
				t.Errorf("EnsureNewline(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatterDecorationsWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Code.Sprint("cenv init"); got != "`cenv init`" {
		t.Errorf("Code.Sprint = %q, expected backtick decoration", got)
	}
	if got := Highlight.Sprint("work"); got != "'work'" {
		t.Errorf("Highlight.Sprint = %q, expected quoted decoration", got)
	}
	if got := Path.Sprint("/tmp/x"); got != "/tmp/x" {
		t.Errorf("Path.Sprint = %q, expected undecorated text", got)
	}
}
