// Package i18n loads the embedded locale catalogues and hands out per-locale printers.
// Catalogue files are YAML documents keyed by locale, flattened to dotted keys
// ("errors.messages.blank") and registered with golang.org/x/text.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var localeFS embed.FS

// Translator owns every loaded catalogue
type Translator struct {
	builder  *catalog.Builder
	keys     map[language.Tag]map[string]struct{}
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
}

// New loads the embedded catalogues. defaultLocale must be one of them.
func New(defaultLocale string) (*Translator, error) {
	return Load(localeFS, "locales", defaultLocale)
}

// Load reads every *.yml catalogue under dir of fsys
func Load(fsys fs.FS, dir, defaultLocale string) (*Translator, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}
	sort.Strings(files)

	t := &Translator{
		builder:  catalog.NewBuilder(catalog.Fallback(fallback)),
		keys:     make(map[language.Tag]map[string]struct{}),
		fallback: fallback,
	}

	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		for locale, tree := range doc {
			tag, err := language.Parse(locale)
			if err != nil {
				return nil, fmt.Errorf("invalid locale %q in %s: %w", locale, file, err)
			}
			if err := t.register(tag, "", tree); err != nil {
				return nil, fmt.Errorf("failed to register %s: %w", file, err)
			}
		}
	}

	if _, ok := t.keys[fallback]; !ok {
		return nil, fmt.Errorf("no catalogue for default locale %q", defaultLocale)
	}

	// the fallback goes first so the matcher prefers it on ties
	t.tags = append(t.tags, fallback)
	for tag := range t.keys {
		if tag != fallback {
			t.tags = append(t.tags, tag)
		}
	}
	sort.Slice(t.tags[1:], func(i, j int) bool { return t.tags[i+1].String() < t.tags[j+1].String() })
	t.matcher = language.NewMatcher(t.tags)

	return t, nil
}

func (t *Translator) register(tag language.Tag, prefix string, node any) error {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			name := key
			if prefix != "" {
				name = prefix + "." + key
			}
			if err := t.register(tag, name, child); err != nil {
				return err
			}
		}
		return nil
	case string:
		if t.keys[tag] == nil {
			t.keys[tag] = make(map[string]struct{})
		}
		t.keys[tag][prefix] = struct{}{}
		return t.builder.SetString(tag, prefix, v)
	default:
		return fmt.Errorf("unsupported value at %q", prefix)
	}
}

// Locales returns the available locales, default first
func (t *Translator) Locales() []language.Tag {
	return append([]language.Tag(nil), t.tags...)
}

// Match picks the best available locale for an Accept-Language header value
func (t *Translator) Match(acceptLanguage string) language.Tag {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return t.fallback
	}
	_, index, confidence := t.matcher.Match(desired...)
	if confidence == language.No {
		return t.fallback
	}
	return t.tags[index]
}

// For returns a Localizer bound to tag. Unknown tags use the default locale.
func (t *Translator) For(tag language.Tag) *Localizer {
	if _, ok := t.keys[tag]; !ok {
		tag = t.fallback
	}
	return &Localizer{
		translator: t,
		tag:        tag,
		printer:    message.NewPrinter(tag, message.Catalog(t.builder)),
	}
}

// Localizer translates keys for a single locale
type Localizer struct {
	translator *Translator
	tag        language.Tag
	printer    *message.Printer
}

// Tag returns the locale of the localizer
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T translates key, formatting args into the message.
// Keys missing from the locale fall back to the default locale.
func (l *Localizer) T(key string, args ...any) string {
	if _, ok := l.translator.keys[l.tag][key]; ok {
		return l.printer.Sprintf(key, args...)
	}
	if _, ok := l.translator.keys[l.translator.fallback][key]; ok {
		return message.NewPrinter(l.translator.fallback, message.Catalog(l.translator.builder)).Sprintf(key, args...)
	}
	return "translation missing: " + l.tag.String() + "." + key
}

// Attribute returns the human name of a form attribute
func (l *Localizer) Attribute(name string) string {
	key := "attributes." + name
	if l.Has(key) {
		return l.T(key)
	}
	return strings.ReplaceAll(name, "_", " ")
}

// Has reports whether key is defined for the locale or the default locale
func (l *Localizer) Has(key string) bool {
	if _, ok := l.translator.keys[l.tag][key]; ok {
		return true
	}
	_, ok := l.translator.keys[l.translator.fallback][key]
	return ok
}
