package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Language
	}{
		{"en", "en"},
		{"EN", "en"},
		{"zh_TW", "zh-tw"},
		{"zh-TW", "zh-tw"},
		{"pt-BR", "pt-br"},
		{"C.UTF-8@euro", "cutf-8-euro"}, // not BCP 47, scrubbed byte-wise
		{"", ""},
	} {
		assert.Equal(t, tc.want, New(tc.in), "%q", tc.in)
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("LC_ALL", "zh_TW.UTF-8")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	assert.Equal(t, Language("zh-tw"), Default())

	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	assert.Equal(t, Language("de-de"), Default())

	t.Setenv("LANG", "")
	assert.Equal(t, Language("en"), Default())
}
