// Package language stores the BCP 47 language tag attached to a text block.
package language

import (
	"os"
	"strings"

	xlanguage "golang.org/x/text/language"
)

var canonMap = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, '-', 0, 0,
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 0, 0, 0, 0, 0, 0,
	'-', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 0, 0, 0, 0, '-',
	0, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 0, 0, 0, 0, 0,
}

// Language stores a canonicalized BCP 47 tag, e.g. "en" or "zh-tw".
type Language string

// New canonicalizes `tag`. Well-formed tags go through the BCP 47
// parser first, so aliases collapse to their canonical form; anything
// the parser rejects is scrubbed byte-wise instead: lowercased, '-'
// kept, '_' and '@' mapped to '-', all other non-alphanumeric bytes
// stripped.
func New(tag string) Language {
	if t, err := xlanguage.Parse(tag); err == nil {
		tag = t.String()
	}
	return scrub(tag)
}

func scrub(tag string) Language {
	out := make([]byte, 0, len(tag))
	for _, b := range []byte(tag) {
		if can := canonMap[b]; can != 0 {
			out = append(out, can)
		}
	}
	return Language(out)
}

func fromLocale(locale string) Language {
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	return New(locale)
}

// Default returns the language found in the environment variables
// LC_ALL, LC_CTYPE or LANG (in that order), or "en" when none is set.
func Default() Language {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			if l := fromLocale(v); l != "" {
				return l
			}
		}
	}
	return "en"
}
