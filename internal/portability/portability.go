package portability

import (
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/cenvtool/cenv/internal/logging"
	"github.com/cenvtool/cenv/internal/paths"
)

// Placeholder tokens embedded in published configuration in place of
// machine-specific absolute paths. Case-sensitive literals.
const (
	PlaceholderClaudeHome = "{{CLAUDE_HOME}}"
	PlaceholderUserHome   = "{{USER_HOME}}"
)

// Warning records an absolute path that could not be mapped to a
// placeholder. Warnings are informational; they never abort processing.
type Warning struct {
	// File is the path of the offending file relative to the processed
	// root. Empty for warnings produced outside the file drivers.
	File string

	// Path is the literal unmappable path fragment.
	Path string
}

func (w Warning) String() string {
	if w.File == "" {
		return w.Path
	}
	return w.File + ": " + w.Path
}

// absPathPattern finds absolute path fragments inside a string: Unix paths
// at the start of the string or after whitespace/quotes, and Windows
// drive-letter paths.
var absPathPattern = regexp.MustCompile(`(?:^|["\s])(/[^\s"']+|[A-Za-z]:\\[^\s"']+)`)

// Mapper transforms parsed JSON values between machine-specific absolute
// paths and portable placeholders. The two roots are fixed at construction
// so substitution and expansion are exact inverses on one machine.
type Mapper struct {
	claudeHome string
	userHome   string

	Logger logger.Logger
}

// NewMapper creates a Mapper for the given roots. claudeHome must be the
// more specific of the two (in practice it lives under userHome); it is
// always tried first so `<claudeHome>/x` becomes `{{CLAUDE_HOME}}/x`,
// never a non-canonical `{{USER_HOME}}/.claude/x`.
func NewMapper(claudeHome, userHome string) *Mapper {
	return &Mapper{claudeHome: claudeHome, userHome: userHome}
}

// NewMapperFromRegistry creates a Mapper for the registry's claude
// directory and home directory.
func NewMapperFromRegistry(reg *paths.Registry) *Mapper {
	return NewMapper(reg.ClaudeDir(), reg.HomeDir())
}

// Substitute replaces absolute paths with placeholders throughout a parsed
// JSON value and reports paths it could not map. The input is any value in
// the encoding/json universe: nil, bool, json.Number/float64, string,
// []any, and map[string]any. Object keys are never touched; non-string
// scalars pass through unexamined.
func (m *Mapper) Substitute(v any) (any, []Warning) {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		var warnings []Warning
		for key, item := range val {
			transformed, w := m.Substitute(item)
			result[key] = transformed
			warnings = append(warnings, w...)
		}
		return result, warnings
	case []any:
		result := make([]any, len(val))
		var warnings []Warning
		for i, item := range val {
			transformed, w := m.Substitute(item)
			result[i] = transformed
			warnings = append(warnings, w...)
		}
		return result, warnings
	case string:
		return m.substituteString(val)
	default:
		return v, nil
	}
}

// Expand replaces placeholders with this machine's paths throughout a
// parsed JSON value. Idempotent on values without placeholders.
func (m *Mapper) Expand(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for key, item := range val {
			result[key] = m.Expand(item)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = m.Expand(item)
		}
		return result
	case string:
		s := strings.ReplaceAll(val, PlaceholderClaudeHome, m.claudeHome)
		return strings.ReplaceAll(s, PlaceholderUserHome, m.userHome)
	default:
		return v
	}
}

// substituteString rewrites one string leaf. Replacement is a literal,
// non-overlapping substring substitution, so a path embedded in a longer
// string (a shell command line, say) is rewritten in place.
func (m *Mapper) substituteString(value string) (string, []Warning) {
	// Already holds a placeholder: leave untouched so re-publishing an
	// already-published document cannot double-substitute.
	if strings.Contains(value, PlaceholderClaudeHome) || strings.Contains(value, PlaceholderUserHome) {
		return value, nil
	}

	result := value
	// Claude home first: it is a prefix of user home paths, and matching
	// the more specific root first keeps substitution canonical.
	result = strings.ReplaceAll(result, m.claudeHome, PlaceholderClaudeHome)
	result = strings.ReplaceAll(result, m.userHome, PlaceholderUserHome)

	if result != value {
		return result, nil
	}

	if !isAbsolutePath(value) {
		return result, nil
	}

	var warnings []Warning
	for _, match := range absPathPattern.FindAllStringSubmatch(value, -1) {
		fragment := match[1]
		if strings.HasPrefix(fragment, m.userHome) || strings.HasPrefix(fragment, m.claudeHome) {
			continue
		}
		warnings = append(warnings, Warning{Path: fragment})
	}
	return result, warnings
}

// isAbsolutePath reports whether a string looks like an absolute path:
// leading slash, Windows drive letter, or UNC prefix.
func isAbsolutePath(value string) bool {
	if strings.HasPrefix(value, "/") || strings.HasPrefix(value, `\\`) {
		return true
	}
	if len(value) >= 3 && value[1] == ':' && (value[2] == '/' || value[2] == '\\') {
		return true
	}
	return false
}

// relWarningFile normalizes a file path for warning output.
func relWarningFile(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}
