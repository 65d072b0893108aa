// Package toolset describes the upgrade modes and the three tools each one consumes.
//
// A mode is either capacity based (barn, silo), where the user enters a
// target storage capacity that is resolved to a per-tool requirement, or
// direct (expansion), where the user enters the per-tool requirement itself.
// The built-in catalog is embedded; a YAML file in the user's config root may
// replace it.
package toolset

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/toolplan/internal/planner"
)

//go:embed catalog.yaml locales/*.yaml
var builtin embed.FS

// ErrUnknownMode indicates a mode ID that is not in the catalog.
var ErrUnknownMode = errors.New("unknown mode")

// Preset is a sample set of inputs for a mode.
type Preset struct {
	Target int   `yaml:"target" json:"target"`
	Stock  []int `yaml:"stock" json:"stock"`
}

// Mode is one upgrade mode.
type Mode struct {
	// ID is the mode identifier used on the command line
	ID string `yaml:"id" json:"id"`

	// Direct is true when the target is the per-tool count rather than a capacity
	Direct bool `yaml:"direct" json:"direct"`

	// Items holds the three tool names in slot order
	Items []string `yaml:"items" json:"items"`

	// Preset is the sample input for this mode
	Preset Preset `yaml:"preset" json:"preset"`
}

// Names returns the tool names as a fixed-size array.
func (m Mode) Names() [planner.NumItems]string {
	var names [planner.NumItems]string
	copy(names[:], m.Items)
	return names
}

// PresetStock returns the preset stock as a planner stock.
func (m Mode) PresetStock() planner.Stock {
	var s planner.Stock
	copy(s[:], m.Preset.Stock)
	return s
}

type catalogFile struct {
	DefaultLang string `yaml:"default_lang"`
	Modes       []Mode `yaml:"modes"`
}

// Catalog holds the known modes and locales.
type Catalog struct {
	defaultLang string
	modes       []Mode
	locales     map[string]*Locale
	localeDir   string
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	data, err := builtin.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in catalog: %w", err)
	}
	return parseCatalog(data)
}

// Load returns the catalog at path, or the built-in catalog if path does not
// exist. Locales are looked up in localeDir before the built-in set.
func Load(path, localeDir string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		data, err = builtin.ReadFile("catalog.yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read built-in catalog: %w", err)
		}
	}

	c, err := parseCatalog(data)
	if err != nil {
		return nil, err
	}
	c.localeDir = localeDir
	return c, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Modes) == 0 {
		return nil, errors.New("catalog defines no modes")
	}

	seen := make(map[string]bool, len(f.Modes))
	for _, m := range f.Modes {
		if m.ID == "" {
			return nil, errors.New("catalog mode has no id")
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("catalog mode %q defined twice", m.ID)
		}
		seen[m.ID] = true
		if len(m.Items) != planner.NumItems {
			return nil, fmt.Errorf("mode %q must list %d items, got %d", m.ID, planner.NumItems, len(m.Items))
		}
		if len(m.Preset.Stock) != 0 && len(m.Preset.Stock) != planner.NumItems {
			return nil, fmt.Errorf("mode %q preset must list %d stock values, got %d", m.ID, planner.NumItems, len(m.Preset.Stock))
		}
	}

	lang := f.DefaultLang
	if lang == "" {
		lang = FallbackLang
	}

	return &Catalog{
		defaultLang: lang,
		modes:       f.Modes,
		locales:     make(map[string]*Locale),
	}, nil
}

// DefaultLang returns the catalog's default language code.
func (c *Catalog) DefaultLang() string {
	return c.defaultLang
}

// Modes returns all modes in catalog order.
func (c *Catalog) Modes() []Mode {
	out := make([]Mode, len(c.modes))
	copy(out, c.modes)
	return out
}

// Mode looks up a mode by ID.
func (c *Catalog) Mode(id string) (Mode, error) {
	for _, m := range c.modes {
		if m.ID == id {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, id)
}

// Names returns the tool names for mode in lang, falling back to the
// catalog's own names.
func (c *Catalog) Names(m Mode, lang string) [planner.NumItems]string {
	names := m.Names()
	loc := c.Locale(lang)
	if loc == nil {
		return names
	}
	if localized, ok := loc.Toolsets[m.ID]; ok {
		for i := 0; i < planner.NumItems && i < len(localized); i++ {
			if localized[i] != "" {
				names[i] = localized[i]
			}
		}
	}
	return names
}
