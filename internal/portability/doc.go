// Package portability rewrites JSON configuration between machine-specific
// absolute paths and portable placeholder tokens.
//
// Publishing substitutes {{CLAUDE_HOME}} and {{USER_HOME}} for the local
// roots; importing expands them back. Substitution tries the claude home
// first because it is the more specific root. Both directions are literal
// substring replacements over string leaves of the parsed document,
// reached by structural recursion: object values and array elements
// recurse, object keys and non-string scalars are never touched.
//
// For a document whose absolute paths all live under one of the two roots,
// expanding a substituted document on the same machine reproduces the
// original exactly. Paths outside both roots are reported as warnings and
// passed through unchanged in both directions.
package portability
