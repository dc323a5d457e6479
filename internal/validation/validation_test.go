package validation

import (
	"errors"
	"testing"

	cenverrors "github.com/cenvtool/cenv/internal/errors"
)

func TestValidateEnvironmentName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Simple", "production", true},
		{"WithHyphen", "staging-v2", true},
		{"WithUnderscore", "dev_env", true},
		{"WithDigits", "test123", true},
		{"SingleChar", "a", true},
		{"Empty", "", false},
		{"Spaces", "env with spaces", false},
		{"PathTraversal", "../etc", false},
		{"ForwardSlash", "a/b", false},
		{"Backslash", "a\\b", false},
		{"HiddenDot", ".hidden", false},
		{"Dot", ".", false},
		{"DotDot", "..", false},
		{"ReservedTrash", ".trash", false},
		{"ReservedGit", ".git", false},
		{"ReservedBackup", ".backup", false},
		{"Unicode", "café", false},
		{"ShellMeta", "env;rm", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEnvironmentName(tc.input)
			if tc.valid && err != nil {
				t.Errorf("ValidateEnvironmentName(%q) = %v, expected nil", tc.input, err)
			}
			if !tc.valid {
				if err == nil {
					t.Errorf("ValidateEnvironmentName(%q) = nil, expected error", tc.input)
				} else if !errors.Is(err, cenverrors.ErrInvalidEnvName) {
					t.Errorf("ValidateEnvironmentName(%q) = %v, expected ErrInvalidEnvName", tc.input, err)
				}
			}
		})
	}
}

func TestReservedNamesSorted(t *testing.T) {
	names := ReservedNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 reserved names, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("reserved names not sorted: %v", names)
		}
	}
}
