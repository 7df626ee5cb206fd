package i18n

import (
	"strings"
	"testing"
)

func TestHandlerLanguages(t *testing.T) {
	h := NewHandler("en")

	if def := h.Default(); def == nil || def.Code() != "en" {
		t.Fatalf("Default(): got %v", def)
	}

	for _, code := range []string{"en", "fr", "EN"} {
		if h.Get(code) == nil {
			t.Errorf("Get(%q): want a language, got nil", code)
		}
	}
	for _, code := range []string{"xx", "", "not a locale"} {
		if got := h.Get(code); got != nil {
			t.Errorf("Get(%q): want nil, got %v", code, got)
		}
	}

	codes := h.Codes()
	if len(codes) != 2 || codes[0] != "en" || codes[1] != "fr" {
		t.Errorf("Codes(): got %v", codes)
	}
}

func TestTranslate(t *testing.T) {
	h := NewHandler("en")
	en := h.Get("en")
	fr := h.Get("fr")

	if got := en.Translate("ping.pinging", nil); got != "Pinging..." {
		t.Errorf("en ping.pinging: got %q", got)
	}
	if got := fr.Translate("help.title", nil); got != "Commandes" {
		t.Errorf("fr help.title: got %q", got)
	}

	got := en.Translate("ping.pong", map[string]any{"Latency": "42ms"})
	if !strings.Contains(got, "42ms") {
		t.Errorf("template data not rendered: %q", got)
	}

	// Unknown keys fall back to the key itself.
	if got := en.Translate("no.such.key", nil); got != "no.such.key" {
		t.Errorf("unknown key: got %q", got)
	}
	if got := en.Translate("", nil); got != "" {
		t.Errorf("empty key: got %q", got)
	}
}

func TestDefaultLocaleFallback(t *testing.T) {
	// An unparseable default falls back to English rather than failing.
	h := NewHandler("???")
	if def := h.Default(); def == nil || def.Code() != "en" {
		t.Errorf("Default() after bad locale: got %v", def)
	}
}
