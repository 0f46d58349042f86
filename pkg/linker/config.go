package linker

import (
	"flag"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseAddress    uint64 `yaml:"base_address"`
	TextUnit       uint64 `yaml:"text_unit"`
	DataUnit       uint64 `yaml:"data_unit"`
	MaxLines       int    `yaml:"max_lines"`
	MaxLineWidth   int    `yaml:"max_line_width"`
	AllowUndefined bool   `yaml:"allow_undefined" category:"advanced"`
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.Uint64Var(&cfg.BaseAddress, "linker.base-address", 0x00400000, "Runtime address of the first line of .text.")
	f.Uint64Var(&cfg.TextUnit, "linker.text-unit", 64, "Width in bytes of one .text line.")
	f.Uint64Var(&cfg.DataUnit, "linker.data-unit", 8, "Width in bytes of one .rodata, .data or .bss line.")
	f.IntVar(&cfg.MaxLines, "linker.max-lines", 64, "Maximum number of lines of an object file, including the merged image.")
	f.IntVar(&cfg.MaxLineWidth, "linker.max-line-width", 128, "Maximum number of columns of a line.")
	f.BoolVar(&cfg.AllowUndefined, "linker.allow-undefined", false, "Let unreferenced undefined symbols through instead of failing the link.")
}

func (cfg *Config) Validate() error {
	if cfg.TextUnit == 0 || cfg.DataUnit == 0 {
		return fmt.Errorf("invalid line units, must be positive")
	}
	if cfg.MaxLines <= HeaderLines {
		return fmt.Errorf("invalid max-lines value, must be greater than %d", HeaderLines)
	}
	if cfg.MaxLineWidth < HexWidth {
		return fmt.Errorf("invalid max-line-width value, must be at least %d", HexWidth)
	}
	return nil
}

// Unit returns the width in bytes of one line of the named section.
func (cfg *Config) Unit(section string) uint64 {
	if section == SectionText {
		return cfg.TextUnit
	}
	return cfg.DataUnit
}

func DefaultConfig() Config {
	var cfg Config
	cfg.RegisterFlags(flag.NewFlagSet("", flag.PanicOnError))
	return cfg
}

// ParseConfig reads a YAML document on top of the default configuration.
func ParseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing linker config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
