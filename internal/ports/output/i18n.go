package output

// Language renders keyed messages for one locale.
type Language interface {
	// Code is the locale code this language was registered under (e.g. "fr").
	Code() string
	// Translate renders the message identified by key.
	// data is an optional map used for template placeholders (may be nil).
	// An unknown key renders as the key itself.
	Translate(key string, data map[string]any) string
}

// Languages maps locale codes to Language instances.
type Languages interface {
	// Get returns the Language registered for code, or nil when code is unknown.
	Get(code string) Language
	// Default returns the fallback Language. It is never nil.
	Default() Language
	// Codes lists all registered locale codes.
	Codes() []string
}
