/*
Package config holds the settings of a font generation run.

A Config starts out with the defaults of the DMD32Plus Arabic font and may be
overridden, in this order, from a schuko configuration, from an environment
file (keys prefixed with DMDFONT_) and finally by the command line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dmdfont.config'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.config")
}

// Config is the full set of parameters for generating a packed font table.
type Config struct {
	ArrayName       string   // identifier of the generated byte array
	HeaderGuard     string   // include guard token of the generated header
	Title           string   // first provenance comment line
	FirstChar       byte     // first code of the repertoire window
	LastChar        byte     // last code of the repertoire window
	TargetMaxHeight int      // upper bound for the font height in pixels
	Threshold       uint8    // a pixel is on iff its brightness exceeds this
	CanvasSize      int      // side length of the square render surface
	MinSize         int      // smallest point size tried
	MaxSize         int      // largest point size tried
	BytesPerLine    int      // hex values per line of the generated array
	FontCandidates  []string // font files to try, first existing wins
	OutputPath      string   // where to write the header file
}

// Default returns the configuration of the DMD32Plus Arabic font.
func Default() *Config {
	return &Config{
		ArrayName:       "ArabicFont",
		HeaderGuard:     "ARABICFONT_H",
		Title:           "Arabic font for DMD32Plus",
		FirstChar:       0x20,
		LastChar:        0xFF,
		TargetMaxHeight: 11,
		Threshold:       80,
		CanvasSize:      80,
		MinSize:         6,
		MaxSize:         49,
		BytesPerLine:    16,
		FontCandidates: []string{
			`C:\Windows\Fonts\tahoma.ttf`,
			`C:\Windows\Fonts\arial.ttf`,
			`C:\Windows\Fonts\segoeui.ttf`,
			"tahoma.ttf",
			"arial.ttf",
			"segoeui.ttf",
			"DejaVuSans.ttf",
		},
		OutputPath: "fonts/ArabicFont.h",
	}
}

// CharCount is the number of codes in the repertoire window.
func (c *Config) CharCount() int {
	return int(c.LastChar) - int(c.FirstChar) + 1
}

// Configuration keys understood by Apply. Environment files use the same keys,
// upper-cased, with dashes replaced by underscores and prefixed by DMDFONT_.
var Keys = []string{
	"font-array", "header-guard", "title", "first-char", "last-char", "max-height",
	"threshold", "canvas-size", "min-size", "max-size", "bytes-per-line", "fonts", "output",
}

// Apply overrides settings from a schuko configuration. Keys with empty values
// are left untouched.
func (c *Config) Apply(conf schuko.Configuration) error {
	if conf == nil {
		return nil
	}
	for _, key := range Keys {
		if v := conf.GetString(key); v != "" {
			if err := c.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// EnvKey returns the environment file key for a configuration key.
func EnvKey(key string) string {
	return "DMDFONT_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// LoadEnvFile overrides settings from an environment file, parsed with godotenv.
func (c *Config) LoadEnvFile(filename string) error {
	env, err := godotenv.Read(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read environment file %s", filename)
	}
	return c.ApplyEnv(env)
}

// ApplyEnv overrides settings from a map of DMDFONT_* variables.
func (c *Config) ApplyEnv(env map[string]string) error {
	for _, key := range Keys {
		if v, ok := env[EnvKey(key)]; ok && v != "" {
			tracer().Debugf("config %s from environment = %q", key, v)
			if err := c.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Set assigns a single setting from its string representation.
// Numbers may be given in decimal or, with prefix 0x, in hex.
// Font candidates are separated by semicolons.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "font-array":
		c.ArrayName = value
	case "header-guard":
		c.HeaderGuard = value
	case "title":
		c.Title = value
	case "output":
		c.OutputPath = value
	case "fonts":
		c.FontCandidates = nil
		for _, f := range strings.Split(value, ";") {
			if f = strings.TrimSpace(f); f != "" {
				c.FontCandidates = append(c.FontCandidates, f)
			}
		}
	case "first-char", "last-char", "threshold":
		n, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return core.WrapError(core.ErrConfig, core.EINVALID, "setting %s: %q is not a byte value", key, value)
		}
		switch key {
		case "first-char":
			c.FirstChar = byte(n)
		case "last-char":
			c.LastChar = byte(n)
		default:
			c.Threshold = uint8(n)
		}
	case "max-height", "canvas-size", "min-size", "max-size", "bytes-per-line":
		n, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return core.WrapError(core.ErrConfig, core.EINVALID, "setting %s: %q is not a number", key, value)
		}
		switch key {
		case "max-height":
			c.TargetMaxHeight = int(n)
		case "canvas-size":
			c.CanvasSize = int(n)
		case "min-size":
			c.MinSize = int(n)
		case "max-size":
			c.MaxSize = int(n)
		default:
			c.BytesPerLine = int(n)
		}
	default:
		return core.ConfigError("unknown setting %q", key)
	}
	return nil
}

// Validate checks the configuration for consistency.
// Errors are of code EINVALID and match core.ErrConfig.
func (c *Config) Validate() error {
	switch {
	case c.TargetMaxHeight < 1 || c.TargetMaxHeight > 16:
		return core.ConfigError("target max height must be in 1…16, is %d", c.TargetMaxHeight)
	case c.FirstChar > c.LastChar:
		return core.ConfigError("first char 0x%02X is beyond last char 0x%02X", c.FirstChar, c.LastChar)
	case c.CharCount() > 255:
		return core.ConfigError("character window 0x%02X-0x%02X exceeds 255 codes", c.FirstChar, c.LastChar)
	case c.Threshold == 255:
		return core.ConfigError("threshold 255 would never let a pixel through")
	case c.CanvasSize < 8:
		return core.ConfigError("canvas size must be at least 8, is %d", c.CanvasSize)
	case c.MinSize < 1 || c.MinSize > c.MaxSize:
		return core.ConfigError("empty point size range %d…%d", c.MinSize, c.MaxSize)
	case c.BytesPerLine < 1:
		return core.ConfigError("bytes per line must be positive, is %d", c.BytesPerLine)
	case c.ArrayName == "" || c.HeaderGuard == "":
		return core.ConfigError("array name and header guard must not be empty")
	case len(c.FontCandidates) == 0:
		return core.ConfigError("no font candidates configured")
	}
	return nil
}
