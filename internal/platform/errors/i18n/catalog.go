// Package i18n provides localized user-facing messages for domain error codes.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// BaseLocale is used when no requested locale matches.
const BaseLocale = "en-US"

var (
	supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)

	builder = catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))

	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}
	registered = map[Code]bool{}
)

// Catalog formats error messages for a single locale.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
	known   map[Code]bool
}

// ResolveLocale picks the best supported locale for an Accept-Language style
// value. Unparseable or empty values resolve to BaseLocale.
func ResolveLocale(accept string) language.Tag {
	accept = strings.TrimSpace(accept)
	if accept == "" {
		return language.AmericanEnglish
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return language.AmericanEnglish
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// GetCatalog returns the catalog for the best match of locale.
func GetCatalog(locale string) *Catalog {
	tag := ResolveLocale(locale)
	key := tag.String()

	catalogsMu.RLock()
	c, ok := catalogs[key]
	catalogsMu.RUnlock()
	if ok {
		return c
	}

	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if c, ok := catalogs[key]; ok {
		return c
	}
	c = &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		known:   copyKnown(),
	}
	catalogs[key] = c
	return c
}

// Locale returns the BCP 47 tag of this catalog.
func (c *Catalog) Locale() string {
	return c.tag.String()
}

// Format renders the message for code with metadata as template data.
// Unknown codes render as the code itself.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	if !c.known[code] {
		return code
	}
	tmpl := c.printer.Sprintf(code)
	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterMessages adds or replaces messages for a supported locale.
func RegisterMessages(tag language.Tag, messages map[Code]string) error {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	for code, msg := range messages {
		if err := builder.SetString(tag, code, msg); err != nil {
			return err
		}
		registered[code] = true
	}
	for _, c := range catalogs {
		c.known = copyKnown()
	}
	return nil
}

func copyKnown() map[Code]bool {
	out := make(map[Code]bool, len(registered))
	for code := range registered {
		out[code] = true
	}
	return out
}

func init() {
	for tag, messages := range map[language.Tag]map[Code]string{
		language.AmericanEnglish:     enUS,
		language.BrazilianPortuguese: ptBR,
	} {
		if err := RegisterMessages(tag, messages); err != nil {
			panic(err)
		}
	}
}
