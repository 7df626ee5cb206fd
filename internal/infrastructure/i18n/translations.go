package i18n

import (
	"embed"
	"log"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"cmdbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.fr.toml"}

// Ensure Handler implements the output.Languages port.
var _ output.Languages = (*Handler)(nil)

// Handler maps locale codes to Language instances backed by go-i18n.
type Handler struct {
	bundle      *i18n.Bundle
	languages   map[string]*Language
	defaultCode string
}

// Language renders keyed messages for one locale, falling back to the
// bundle's default locale and finally to the key itself.
type Language struct {
	code      string
	localizer *i18n.Localizer
}

// NewHandler builds a Handler from the embedded active.*.toml files, with
// defaultLocale (e.g. "en") as the fallback for every registered language.
func NewHandler(defaultLocale string) *Handler {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	h := &Handler{
		bundle:      bundle,
		languages:   make(map[string]*Language),
		defaultCode: tag.String(),
	}
	for _, t := range bundle.LanguageTags() {
		code := t.String()
		h.languages[code] = &Language{
			code:      code,
			localizer: i18n.NewLocalizer(bundle, code, h.defaultCode),
		}
	}
	if _, ok := h.languages[h.defaultCode]; !ok {
		h.languages[h.defaultCode] = &Language{
			code:      h.defaultCode,
			localizer: i18n.NewLocalizer(bundle, h.defaultCode),
		}
	}
	return h
}

// Get returns the Language registered for code, or nil when code is unknown.
func (h *Handler) Get(code string) output.Language {
	tag, err := language.Parse(code)
	if err != nil {
		return nil
	}
	if l, ok := h.languages[tag.String()]; ok {
		return l
	}
	return nil
}

// Default returns the fallback Language.
func (h *Handler) Default() output.Language {
	return h.languages[h.defaultCode]
}

// Codes lists all registered locale codes, sorted.
func (h *Handler) Codes() []string {
	codes := make([]string, 0, len(h.languages))
	for code := range h.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Code is the locale code this language was registered under.
func (l *Language) Code() string { return l.code }

// Translate renders the message identified by key. An unknown key renders
// as the key itself so a missing translation never blanks a reply.
func (l *Language) Translate(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locale=%s): %v", key, l.code, err)
		return key
	}
	return msg
}
