// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config reads lint configuration layers from YAML, JSON and TOML
// documents and layers them on top of each other.
//
// Every [Source] writes key value pairs into a [Store]. [Read] applies
// sources in order so later sources win:
//
//	m, err := config.Read(
//	    config.FromYaml(base),
//	    config.FromJson(overrides),
//	)
//
// Nested mappings are merged key by key. Any other value, slices included,
// is replaced as a whole by the later source. The resulting [Manager] can
// be decoded into a struct with [Manager.Unmarshal] or copied out as a
// plain map with [Manager.Map].
//
// Layer files may be rendered as text/templates before decoding by wrapping
// their io.Reader with [RenderTextTemplate].
package config
