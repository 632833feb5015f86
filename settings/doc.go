// Package settings loads the optional headercommenter settings file.
//
// The file supplies defaults for the same options the command line accepts.
// It is read by extension: YAML (.yaml, .yml, .json) through goccy/go-yaml and
// TOML (.toml) through BurntSushi/toml. Unknown keys are rejected.
//
//	width: 100
//	domain: example.edu
//	organization: Example
//	escape-at: true
//	extensions: [.h, .cpp]
//
// [File.Apply] copies values into the flag-backed configs of the other
// packages, leaving alone any flag the user set explicitly. [Schema] returns
// the JSON Schema of the file for editor integration.
package settings
