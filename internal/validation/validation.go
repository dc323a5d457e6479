package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	cenverrors "github.com/cenvtool/cenv/internal/errors"
)

// validNamePattern matches names made only of letters, digits, hyphens, and
// underscores. Everything else (path separators, dots, spaces) is rejected,
// which rules out traversal like "../etc" by construction.
var validNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// reservedNames cannot be used as environment names because they collide
// with the cenv layout or directory navigation.
var reservedNames = map[string]bool{
	".":       true,
	"..":      true,
	".trash":  true,
	".git":    true,
	".backup": true,
}

// ReservedNames returns the reserved name set, sorted, for error messages
// and documentation.
func ReservedNames() []string {
	names := make([]string, 0, len(reservedNames))
	for name := range reservedNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateEnvironmentName checks an environment name for correctness and
// safety. Valid names are non-empty, contain only letters, digits, hyphens,
// and underscores, and are not reserved. Engines trust this check and do
// not re-validate characters.
func ValidateEnvironmentName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", cenverrors.ErrInvalidEnvName)
	}

	if reservedNames[name] {
		return fmt.Errorf("%w: %q is reserved (reserved names: %s)",
			cenverrors.ErrInvalidEnvName, name, strings.Join(ReservedNames(), ", "))
	}

	if !validNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q may only contain letters, digits, hyphens, and underscores",
			cenverrors.ErrInvalidEnvName, name)
	}

	return nil
}
