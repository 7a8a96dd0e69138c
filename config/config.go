// Package config holds the generator settings. Values come from the
// ReaImGui defaults, then an optional TOML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/BurntSushi/toml"

	"github.com/ardanlabs/reaimgui-gen/generator"
	"github.com/ardanlabs/reaimgui-gen/parser"
)

type Dialect struct {
	Prefix         string   `toml:"prefix"`
	Extern         string   `toml:"extern"`
	FuncMarker     string   `toml:"func_marker"`
	EnumMarker     string   `toml:"enum_marker"`
	ArrayMarker    string   `toml:"array_marker"`
	ValidateHelper string   `toml:"validate_helper"`
	AllowFailures  []string `toml:"allow_failures"`
}

type Config struct {
	Package  string  `toml:"package"`
	TypeName string  `toml:"type_name"`
	Source   string  `toml:"source"`
	Dialect  Dialect `toml:"dialect"`
}

func Default() Config {
	d := parser.DefaultDialect()

	return Config{
		Package:  "reaimgui",
		TypeName: "ImGui",
		Source:   "reaper_imgui_functions.h",
		Dialect: Dialect{
			Prefix:         d.Prefix,
			Extern:         d.Extern,
			FuncMarker:     d.FuncMarker,
			EnumMarker:     d.EnumMarker,
			ArrayMarker:    d.ArrayMarker,
			ValidateHelper: d.ValidateHelper,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// Decode parses TOML text over the defaults.
func Decode(text string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decoding config: unknown key %q", undecoded[0].String())
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("package %q is not a valid Go package name", c.Package))
	}
	if !token.IsIdentifier(c.TypeName) {
		errs = append(errs, fmt.Errorf("type_name %q is not a valid Go identifier", c.TypeName))
	}
	if c.Dialect.Prefix == "" {
		errs = append(errs, errors.New("dialect.prefix is required"))
	}
	if c.Dialect.Extern == "" {
		errs = append(errs, errors.New("dialect.extern is required"))
	}
	if c.Dialect.FuncMarker == "" {
		errs = append(errs, errors.New("dialect.func_marker is required"))
	}
	if c.Dialect.EnumMarker == "" {
		errs = append(errs, errors.New("dialect.enum_marker is required"))
	}

	return errors.Join(errs...)
}

func (c Config) ParserDialect() parser.Dialect {
	return parser.Dialect{
		Prefix:         c.Dialect.Prefix,
		Extern:         c.Dialect.Extern,
		FuncMarker:     c.Dialect.FuncMarker,
		EnumMarker:     c.Dialect.EnumMarker,
		ArrayMarker:    c.Dialect.ArrayMarker,
		ValidateHelper: c.Dialect.ValidateHelper,
		AllowFailures:  c.Dialect.AllowFailures,
	}
}

func (c Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Package:  c.Package,
		TypeName: c.TypeName,
		Prefix:   c.Dialect.Prefix,
		Source:   c.Source,
	}
}
