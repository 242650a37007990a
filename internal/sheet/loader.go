package sheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/yacobolo/fluidcss"
)

// ErrUnsupportedSheet is returned for sheet files that are neither YAML nor TOML.
var ErrUnsupportedSheet = errors.New("unsupported sheet format")

// rawSheet mirrors the on-disk layout shared by YAML and TOML sheets.
type rawSheet struct {
	Media *string   `koanf:"media" toml:"media"`
	Rules []rawRule `koanf:"rules" toml:"rules"`
}

type rawRule struct {
	Selector    string        `koanf:"selector" toml:"selector"`
	Property    string        `koanf:"property" toml:"property"`
	Breakpoints []interface{} `koanf:"breakpoints" toml:"breakpoints"`
}

// LoadSheet reads a sheet file, choosing the decoder from its extension.
func LoadSheet(path string) (*Sheet, error) {
	var raw rawSheet

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read sheet: %w", err)
		}
		if err := k.Unmarshal("", &raw); err != nil {
			return nil, fmt.Errorf("decode sheet: %w", err)
		}

	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, fmt.Errorf("decode sheet: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSheet, path)
	}

	return raw.toSheet(path)
}

func (raw rawSheet) toSheet(path string) (*Sheet, error) {
	sheet := &Sheet{
		Path:  path,
		Media: raw.Media,
		Rules: make([]Rule, 0, len(raw.Rules)),
	}

	for i, r := range raw.Rules {
		rule := Rule{
			Selector:    strings.TrimSpace(r.Selector),
			Property:    strings.TrimSpace(r.Property),
			Breakpoints: make([]fluidcss.Breakpoint, 0, len(r.Breakpoints)),
		}
		for j, entry := range r.Breakpoints {
			bp, err := breakpointFromValue(entry)
			if err != nil {
				return nil, fmt.Errorf("rule %d breakpoint %d: %w", i+1, j+1, err)
			}
			rule.Breakpoints = append(rule.Breakpoints, bp)
		}
		sheet.Rules = append(sheet.Rules, rule)
	}

	return sheet, nil
}
