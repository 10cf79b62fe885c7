package become

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesPromptDefault(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   bool
	}{
		{"prompt with space", "[please] password: ", true},
		{"upper case without space", "[PLEASE] PASSWORD:", true},
		{"space before colon", "[please] password :", true},
		{"possessive prefix", "Somebody's [please] password: ", true},
		{"fullwidth colon", "[please] password：", true},
		{"fullwidth colon with spaces", "[please] password ： ", true},
		{"trailing output after prompt", "[please] password: \r\n", true},
		{"missing colon", "please password", false},
		{"missing colon with brackets", "[please] password", false},
		{"not at start", "motd\n[please] password: ", false},
		{"leading space", " [please] password:", false},
		{"empty", "", false},
		{"unrelated", "Password:", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, err := MatchesPrompt([]byte(c.output), nil)
			require.NoError(t, err)
			assert.Equal(t, c.want, ok)
		})
	}
}

func TestMatchesPromptTemplates(t *testing.T) {
	templates := []string{"Mot de passe", "Passwort", "密码"}

	for _, tpl := range templates {
		for _, out := range []string{tpl + " :", strings.ToUpper(tpl) + ":", strings.ToLower(tpl) + ": "} {
			ok, err := MatchesPrompt([]byte(out), templates)
			require.NoError(t, err)
			assert.True(t, ok, "output %q", out)
		}

		ok, err := MatchesPrompt([]byte("Enter "+tpl+":"), templates)
		require.NoError(t, err)
		assert.False(t, ok, "unanchored output for %q", tpl)
	}

	ok, err := MatchesPrompt([]byte("[please] password:"), templates)
	require.NoError(t, err)
	assert.False(t, ok, "custom templates replace the default one")
}

func TestMatchesPromptLiteralTemplates(t *testing.T) {
	templates := []string{"pass.word[x]"}

	ok, err := MatchesPrompt([]byte("passXword[x]:"), templates)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = MatchesPrompt([]byte("passXwordx:"), templates)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = MatchesPrompt([]byte("pass.word[x]:"), templates)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MatchesPrompt([]byte("(a|b)* pwd:"), []string{"(a|b)* pwd"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MatchesPrompt([]byte("aab pwd:"), []string{"(a|b)* pwd"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchesPromptColonAppliesToEveryTemplate(t *testing.T) {
	templates := []string{"first", "second"}

	ok, err := MatchesPrompt([]byte("first"), templates)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = MatchesPrompt([]byte("first:"), templates)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchesPromptRawBytes(t *testing.T) {
	ok, err := MatchesPrompt([]byte{0xff, 0xfe, 0x00, ':'}, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = MatchesPrompt(append([]byte("[please] password:"), 0xff, 0x00), nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPromptPatternDefault(t *testing.T) {
	re, err := PromptPattern(nil)
	require.NoError(t, err)
	assert.True(t, re.MatchString("[please] password: "))

	re, err = PromptPattern([]string{})
	require.NoError(t, err)
	assert.True(t, re.MatchString("[please] password: "))
}

func TestMatchesPromptUserVariantNeedsTemplate(t *testing.T) {
	output := []byte("[please] password for bob: ")

	ok, err := MatchesPrompt(output, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = MatchesPrompt(output, []string{"[please] password for bob"})
	require.NoError(t, err)
	assert.True(t, ok)
}
