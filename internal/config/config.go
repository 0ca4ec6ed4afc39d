// Package config loads jruff.toml: the file selection table and the
// per-rule property tables. Absent file, absent table, and malformed
// values all degrade to documented defaults; loading never fails the run
// unless the file itself cannot be parsed.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/eleventy7/jruff/internal/lint"
)

// FilesSection selects and decodes input files.
type FilesSection struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
	Charset string   `toml:"charset"`
}

// RuleSection is one decoded [rules.<Name>] table.
type RuleSection struct {
	Enabled bool
	Props   lint.Properties
}

// Config is a fully decoded jruff.toml.
type Config struct {
	Files FilesSection
	Rules map[string]RuleSection

	// Path is where the config was loaded from, empty for defaults.
	Path string

	// Warnings collects non-fatal decode problems (a property with an
	// unrepresentable type), one line per offending key.
	Warnings []string
}

type rawConfig struct {
	Files FilesSection              `toml:"files"`
	Rules map[string]map[string]any `toml:"rules"`
}

// Default returns the configuration used when no jruff.toml exists: every
// rule enabled with its built-in defaults, UTF-8 sources.
func Default() *Config {
	return &Config{
		Files: FilesSection{
			Include: []string{"**/*.java"},
			Charset: "UTF-8",
		},
		Rules: map[string]RuleSection{},
	}
}

// Load decodes a jruff.toml at an explicit path.
func Load(path string) (*Config, error) {
	var raw rawConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg := Default()
	cfg.Path = path
	if meta.IsDefined("files") {
		if len(raw.Files.Include) > 0 {
			cfg.Files.Include = raw.Files.Include
		}
		cfg.Files.Exclude = raw.Files.Exclude
		if raw.Files.Charset != "" {
			cfg.Files.Charset = raw.Files.Charset
		}
	}
	for name, table := range raw.Rules {
		section := RuleSection{Enabled: true, Props: lint.Properties{}}
		for key, value := range table {
			if key == "enabled" {
				section.Enabled = boolValue(value, true)
				continue
			}
			str, ok := stringify(value)
			if !ok {
				cfg.Warnings = append(cfg.Warnings,
					fmt.Sprintf("rules.%s.%s: unsupported value type %T, using rule default", name, key, value))
				continue
			}
			section.Props[key] = str
		}
		cfg.Rules[name] = section
	}
	return cfg, nil
}

// Discover walks up from startDir, loads the nearest jruff.toml, and falls
// back to Default when none exists.
func Discover(startDir string) (*Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// RuleSettings reports whether a rule is enabled and with what properties.
// Rules without a [rules.<Name>] table run with built-in defaults.
func (c *Config) RuleSettings(name string) (lint.Properties, bool) {
	section, ok := c.Rules[name]
	if !ok {
		return nil, true
	}
	if !section.Enabled {
		return nil, false
	}
	return section.Props, true
}

// Digest returns a stable hash of everything that affects analysis
// results. It feeds the result cache key, so two configs with the same
// digest must produce identical diagnostics.
func (c *Config) Digest() string {
	var lines []string
	lines = append(lines, "charset="+c.Files.Charset)
	for name, section := range c.Rules {
		if !section.Enabled {
			lines = append(lines, "rule."+name+"=off")
			continue
		}
		for key, value := range section.Props {
			lines = append(lines, "rule."+name+"."+key+"="+value)
		}
	}
	sort.Strings(lines)
	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// boolValue coerces a decoded TOML value to bool, accepting the native
// bool and the checkstyle-style quoted "true"/"false".
func boolValue(v any, def bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch b {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return def
}

// stringify flattens a TOML scalar into the string form Properties carry.
func stringify(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case bool:
		return strconv.FormatBool(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64), true
	}
	return "", false
}

// Excluded reports whether a slash-separated relative path matches any
// exclude pattern.
func (c *Config) Excluded(relPath string) bool {
	relPath = strings.ReplaceAll(relPath, "\\", "/")
	for _, pattern := range c.Files.Exclude {
		if matchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}
