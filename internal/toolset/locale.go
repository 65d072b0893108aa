package toolset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FallbackLang is used when a requested language has no locale file.
const FallbackLang = "en"

var langPattern = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]{2,8})?$`)

// Locale holds UI strings and localized tool names for one language.
//
// Locale files come in two shapes: grouped, with "ui" and "toolsets"
// sections, or flat, where every top-level key is a UI string.
type Locale struct {
	UI       map[string]string   `yaml:"ui"`
	Toolsets map[string][]string `yaml:"toolsets"`
}

func parseLocale(data []byte) (*Locale, error) {
	var loc Locale
	if err := yaml.Unmarshal(data, &loc); err == nil && (len(loc.UI) > 0 || len(loc.Toolsets) > 0) {
		return &loc, nil
	}

	var flat map[string]string
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("failed to parse locale: %w", err)
	}
	return &Locale{UI: flat, Toolsets: map[string][]string{}}, nil
}

// Locale returns the locale for lang, or nil if none exists. A regional code
// such as "en-US" falls back to its base language.
func (c *Catalog) Locale(lang string) *Locale {
	if !langPattern.MatchString(lang) {
		return nil
	}
	for _, code := range candidates(lang) {
		if loc, ok := c.locales[code]; ok {
			return loc
		}
		loc, err := c.readLocale(code)
		if err != nil || loc == nil {
			continue
		}
		c.locales[code] = loc
		return loc
	}
	return nil
}

func candidates(lang string) []string {
	lang = strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	if base, _, found := strings.Cut(lang, "-"); found {
		return []string{lang, base}
	}
	return []string{lang}
}

func (c *Catalog) readLocale(code string) (*Locale, error) {
	if c.localeDir != "" {
		data, err := os.ReadFile(filepath.Join(c.localeDir, code+".yaml"))
		if err == nil {
			return parseLocale(data)
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	data, err := builtin.ReadFile("locales/" + code + ".yaml")
	if err != nil {
		return nil, nil
	}
	return parseLocale(data)
}

// Translator looks up UI strings for one language.
type Translator struct {
	lang     string
	primary  *Locale
	fallback *Locale
}

// Translator returns a translator for lang. An empty lang selects the
// catalog default.
func (c *Catalog) Translator(lang string) *Translator {
	if lang == "" {
		lang = c.defaultLang
	}
	t := &Translator{lang: lang, primary: c.Locale(lang)}
	if fb := c.Locale(FallbackLang); fb != t.primary {
		t.fallback = fb
	}
	return t
}

// Lang returns the requested language code.
func (t *Translator) Lang() string {
	return t.lang
}

// T returns the string for key, or the key itself if no locale defines it.
func (t *Translator) T(key string) string {
	for _, loc := range []*Locale{t.primary, t.fallback} {
		if loc == nil {
			continue
		}
		if s, ok := loc.UI[key]; ok && s != "" {
			return s
		}
	}
	return key
}

// Tf formats the string for key with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}
