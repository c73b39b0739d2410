// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}

	matcherOnce    sync.Once
	localeMatcher  language.Matcher
	matcherLocales []string
)

// GetCatalog returns the catalog for the given locale.
// Locale matching uses x/text language tags so "en", "en-GB" and similar
// requests resolve to the closest registered catalog. Falls back to en-US
// when no catalog matches.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	if c, ok := lookupCatalog(matchLocale(requested)); ok {
		return c
	}

	c, _ := lookupCatalog(BaseLocale)
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a new catalog for the given locale.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

// matchLocale resolves a requested locale against the registered catalogs.
func matchLocale(requested string) string {
	matcherOnce.Do(func() {
		catalogsMu.RLock()
		defer catalogsMu.RUnlock()
		tags := make([]language.Tag, 0, len(catalogs)+1)
		locales := make([]string, 0, len(catalogs)+1)
		// Base locale first so it wins ties.
		tags = append(tags, language.MustParse(BaseLocale))
		locales = append(locales, BaseLocale)
		for locale := range catalogs {
			if locale == BaseLocale {
				continue
			}
			tag, err := language.Parse(locale)
			if err != nil {
				continue
			}
			tags = append(tags, tag)
			locales = append(locales, locale)
		}
		localeMatcher = language.NewMatcher(tags)
		matcherLocales = locales
	})

	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}
	_, index, _ := localeMatcher.Match(tag)
	if index < 0 || index >= len(matcherLocales) {
		return BaseLocale
	}
	return matcherLocales[index]
}
