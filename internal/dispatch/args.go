package dispatch

import "strings"

// Tokenize splits a command argument string into positional parameters and
// --key=value flags. Double quotes group whitespace into one token; a bare
// --switch becomes a flag with value "true". Quoted tokens are always
// positional, so "--not-a-flag" stays a parameter.
func Tokenize(input string) (params []string, flags map[string]string) {
	flags = map[string]string{}
	for _, tok := range splitQuoted(input) {
		if !tok.quoted {
			if name, value, ok := cutFlag(tok.text); ok {
				flags[name] = value
				continue
			}
		}
		params = append(params, tok.text)
	}
	return params, flags
}

func cutFlag(token string) (name, value string, ok bool) {
	if !strings.HasPrefix(token, "--") || len(token) <= 2 {
		return "", "", false
	}
	name, value, found := strings.Cut(token[2:], "=")
	if name == "" {
		return "", "", false
	}
	if !found {
		value = "true"
	}
	return strings.ToLower(name), value, true
}

type token struct {
	text   string
	quoted bool
}

// splitQuoted splits on runs of spaces, keeping double-quoted spans intact.
// An unterminated quote runs to the end of the input. Quotes are stripped
// from the resulting token.
func splitQuoted(input string) []token {
	var tokens []token
	var cur strings.Builder
	inQuote, wasQuoted := false, false
	flush := func() {
		if cur.Len() > 0 || wasQuoted {
			tokens = append(tokens, token{text: cur.String(), quoted: wasQuoted})
			cur.Reset()
		}
		wasQuoted = false
	}
	for _, r := range input {
		switch {
		case r == '"':
			inQuote = !inQuote
			wasQuoted = true
		case r == ' ' && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
