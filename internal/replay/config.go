// File: internal/replay/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package replay

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Element kinds a script may operate on.
const (
	ElementInt    = "int"
	ElementString = "string"
)

// Step ops.
const (
	OpPushBack = "push_back"
	OpPopBack  = "pop_back"
	OpInsert   = "insert"
	OpErase    = "erase"
	OpResize   = "resize"
	OpReserve  = "reserve"
	OpClear    = "clear"
	OpAt       = "at"
	OpClone    = "clone"
	OpMove     = "move"
	OpSwap     = "swap"
)

var knownOps = map[string]struct{}{
	OpPushBack: {}, OpPopBack: {}, OpInsert: {}, OpErase: {}, OpResize: {},
	OpReserve: {}, OpClear: {}, OpAt: {}, OpClone: {}, OpMove: {}, OpSwap: {},
}

// Step is one scripted operation. Repeat > 1 queues the step that many times.
type Step struct {
	Op     string `toml:"op"`
	Index  int    `toml:"index"`
	Value  string `toml:"value"`
	Count  int    `toml:"count"`
	Repeat int    `toml:"repeat"`
}

// Config drives one replay run.
type Config struct {
	Name           string
	Element        string
	InitialReserve int
	ReportProbes   bool
	Steps          []Step
}

// DefaultConfig returns an empty string-element script.
func DefaultConfig() Config {
	return Config{
		Name:    "replay",
		Element: ElementString,
	}
}

// script file key mapping.
type fileConfig struct {
	Name           string `toml:"name"`
	Element        string `toml:"element"`
	InitialReserve int    `toml:"initial_reserve"`
	ReportProbes   bool   `toml:"report_probes"`
	Steps          []Step `toml:"step"`
}

// LoadConfig reads a TOML script and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load replay script: %w", err)
	}
	return fromFile(raw, meta)
}

// ParseConfig is LoadConfig for an in-memory script.
func ParseConfig(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse replay script: %w", err)
	}
	return fromFile(raw, meta)
}

func fromFile(raw fileConfig, meta toml.MetaData) (Config, error) {
	cfg := DefaultConfig()
	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("element") {
		cfg.Element = strings.ToLower(strings.TrimSpace(raw.Element))
	}
	if meta.IsDefined("initial_reserve") {
		cfg.InitialReserve = raw.InitialReserve
	}
	if meta.IsDefined("report_probes") {
		cfg.ReportProbes = raw.ReportProbes
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("replay script: unknown key %q", undecoded[0].String())
	}
	cfg.Steps = raw.Steps
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks static script properties. Positional checks that depend
// on the vector state happen while running.
func (c Config) Validate() error {
	switch c.Element {
	case ElementInt, ElementString:
	default:
		return fmt.Errorf("replay script: unsupported element %q", c.Element)
	}
	if c.InitialReserve < 0 {
		return fmt.Errorf("replay script: negative initial_reserve %d", c.InitialReserve)
	}
	for i, s := range c.Steps {
		if _, ok := knownOps[s.Op]; !ok {
			return fmt.Errorf("replay script: step %d: unknown op %q", i, s.Op)
		}
		if s.Repeat < 0 {
			return fmt.Errorf("replay script: step %d: negative repeat", i)
		}
	}
	return nil
}
