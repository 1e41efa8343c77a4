package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File represents the top-level radix.yaml configuration.
type File struct {
	// InputBase is the radix for bare literals: auto, 2, 8, 10, 16 or a base
	// name (bin, oct, dec, hex).
	InputBase string `yaml:"input_base,omitempty"`

	// DisplayBase is the primary rendering: all, 2, 8, 10, 16 or a base name.
	DisplayBase string `yaml:"display_base,omitempty"`

	// Mode is "float" or "int".
	Mode string `yaml:"mode,omitempty"`

	// BitWidth is the integer mode width in bits.
	BitWidth int `yaml:"bit_width,omitempty"`

	// Signed selects two's-complement interpretation in integer mode.
	// A pointer so an explicit false survives setDefaults.
	Signed *bool `yaml:"signed,omitempty"`

	// Color is auto, always or never.
	Color string `yaml:"color,omitempty"`

	History HistoryConfig `yaml:"history,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// HistoryConfig locates the expression history database.
type HistoryConfig struct {
	// Path to the SQLite file. Relative paths resolve against the config
	// file directory. Empty uses the user config dir.
	Path string `yaml:"path,omitempty"`

	// Limit is the number of entries kept, newest first.
	Limit int `yaml:"limit,omitempty"`

	// Disabled turns history recording off.
	Disabled bool `yaml:"disabled,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

var (
	inputBaseNames   = []string{"auto", "2", "8", "10", "16", "bin", "binary", "oct", "octal", "dec", "decimal", "hex", "hexadecimal"}
	displayBaseNames = []string{"all", "2", "8", "10", "16", "bin", "binary", "oct", "octal", "dec", "decimal", "hex", "hexadecimal"}
	modeNames        = []string{"float", "int", "integer"}
	colorNames       = []string{"auto", "always", "never"}
)

// Default returns the configuration used when no radix.yaml is found.
func Default() *File {
	f := &File{}
	f.setDefaults("")
	return f
}

// LoadConfig reads and parses a radix.yaml file.
func LoadConfig(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses radix.yaml content from bytes.
// The path argument is used for error messages and to resolve relative
// history paths.
func ParseConfig(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := f.validate(path); err != nil {
		return nil, err
	}
	f.setDefaults(filepath.Dir(path))
	return &f, nil
}

// FindConfig searches for radix.yaml starting from dir and walking up to
// parent directories. It returns an empty path and nil error when no file
// exists.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (f *File) validate(path string) error {
	if f.InputBase != "" && !oneOf(f.InputBase, inputBaseNames) {
		return fmt.Errorf("%s: input_base: unknown base %q", path, f.InputBase)
	}
	if f.DisplayBase != "" && !oneOf(f.DisplayBase, displayBaseNames) {
		return fmt.Errorf("%s: display_base: unknown base %q", path, f.DisplayBase)
	}
	if f.Mode != "" && !oneOf(f.Mode, modeNames) {
		return fmt.Errorf("%s: mode: unknown mode %q", path, f.Mode)
	}
	if f.BitWidth < 0 || f.BitWidth > MaxBitWidth {
		return fmt.Errorf("%s: bit_width: %d out of range 1..%d", path, f.BitWidth, MaxBitWidth)
	}
	if f.Color != "" && !oneOf(f.Color, colorNames) {
		return fmt.Errorf("%s: color: expected auto, always or never, got %q", path, f.Color)
	}
	if f.History.Limit < 0 {
		return fmt.Errorf("%s: history.limit: must not be negative", path)
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (f *File) setDefaults(configDir string) {
	if f.InputBase == "" {
		f.InputBase = "auto"
	}
	if f.DisplayBase == "" {
		f.DisplayBase = "10"
	}
	if f.Mode == "" {
		f.Mode = "float"
	}
	if f.BitWidth == 0 {
		f.BitWidth = DefaultBitWidth
	}
	if f.Signed == nil {
		signed := true
		f.Signed = &signed
	}
	if f.Color == "" {
		f.Color = "auto"
	}
	if f.History.Limit == 0 {
		f.History.Limit = DefaultHistoryLimit
	}
	if f.History.Path != "" && configDir != "" && !filepath.IsAbs(f.History.Path) {
		f.History.Path = filepath.Join(configDir, f.History.Path)
	}
	if f.Server.Addr == "" {
		f.Server.Addr = DefaultServerAddr
	}
}

// HistoryPath returns the history database location, falling back to the
// user config directory.
func (f *File) HistoryPath() (string, error) {
	if f.History.Path != "" {
		return f.History.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "radixquest", DefaultHistoryFile), nil
}

func oneOf(s string, names []string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, n := range names {
		if s == n {
			return true
		}
	}
	return false
}
