// Package segment splits source text into the atomic tokens the layout
// engine shapes and places: runs of Western text, single CJK/Hangul/Kana
// characters, whitespace separators, and a few fixed multi-codepoint
// ligatures.
package segment

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/log"
)

// Kind classifies a token.
type Kind uint8

const (
	Word         Kind = iota // maximal run of non-CJK, non-whitespace characters
	Space                    // maximal run of ASCII space, tab or newline
	CJKAtom                  // one CJK/Hangul/Kana/CJK-punctuation character
	MultiSpecial             // one of the fixed ligatures ──, 〴〵, 〳〵
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Space:
		return "space"
	case CJKAtom:
		return "cjk"
	case MultiSpecial:
		return "special"
	}
	return fmt.Sprintf("<unknown kind %d>", k)
}

// Token is a non-empty substring of the source. Token order matches
// source order; concatenating token texts restores the source with each
// whitespace run kept as a single separator token.
type Token struct {
	Text string
	Kind Kind
}

// IsSpace reports whether the token is a whitespace separator.
func (t Token) IsSpace() bool { return t.Kind == Space }

// The CJK punctuation characters that split into single-character
// tokens alongside the Bopomofo/Han/Hangul/Hiragana/Katakana scripts.
// The final character is the ideographic space U+3000, which is an
// atom, not a separator.
const cjkPunct = "。，、；：「」『』（）？！─…《》〈〉．～゠‥｛｝［］〔〕〘〙【】〖〗※〳〵〴〲〱〽〃　"

const cjkClass = `\p{Bopomofo}\p{Han}\p{Hangul}\p{Hiragana}\p{Katakana}` + cjkPunct

// One Unicode-aware pattern, scanned left to right. Alternation order
// is the precedence rule: multi-codepoint ligatures win over single CJK
// atoms, which win over Western word runs, which win over whitespace.
// \s only covers ASCII whitespace, so the word class also excludes the
// Unicode separator categories; a no-break space neither joins a word
// nor separates two.
var pattern = regexp.MustCompile(`(──|〴〵|〳〵)|([` + cjkClass + `])|([^\s\p{Z}` + cjkClass + `]+)|([ \t\n]+)`)

// group index in the pattern above, in submatch-pair order.
var groupKind = [...]Kind{MultiSpecial, CJKAtom, Word, Space}

// Segment splits text into its ordered token list. Characters claimed
// by no alternative (Unicode separators such as the no-break space,
// carriage returns, form feeds) are skipped with a diagnostic. Other
// control characters are not skipped: they join Western word runs.
// The token list never
// contains empty tokens.
func Segment(text string, logger *log.Logger) []Token {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var tokens []Token
	prev := 0
	for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > prev {
			logger.Debug("segment: skipping unclassifiable text", "text", text[prev:m[0]])
		}
		prev = m[1]
		for g := 1; g <= len(groupKind); g++ {
			if m[2*g] >= 0 {
				tokens = append(tokens, Token{Text: text[m[2*g]:m[2*g+1]], Kind: groupKind[g-1]})
				break
			}
		}
	}
	if prev < len(text) {
		logger.Debug("segment: skipping unclassifiable text", "text", text[prev:])
	}
	return tokens
}
