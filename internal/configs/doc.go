// Package configs loads cenv configuration.
//
// Settings come from three layers, highest precedence first:
//
//  1. CENV_* environment variables (CENV_GIT_TIMEOUT)
//  2. The TOML config file at <user config dir>/cenv/config.toml
//  3. Built-in defaults
//
// A missing or malformed config file never makes cenv unusable; loading
// always succeeds and falls back to defaults.
package configs
