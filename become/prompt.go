package become

import (
	"regexp"
	"strings"
)

// DefaultPromptL10N is the literal prompt printed by please. The colon must
// follow it, so a variant such as "[please] password for bob: " needs its
// own prompt_l10n entry.
var DefaultPromptL10N = []string{
	"[please] password",
}

const (
	possessivePrefix = `(?:\w+'s )?`
	// ascii colon or fullwidth colon U+FF1A
	colonSuffix = ` ?(?::|\x{FF1A}) ?`
)

// PromptPattern compiles the templates into a case-insensitive pattern
// anchored at the start of the output. Templates are matched literally.
func PromptPattern(templates []string) (*regexp.Regexp, error) {
	if len(templates) == 0 {
		templates = DefaultPromptL10N
	}
	alternatives := make([]string, len(templates))
	for i, tpl := range templates {
		alternatives[i] = possessivePrefix + regexp.QuoteMeta(tpl)
	}
	return regexp.Compile(`(?i)^(?:` + strings.Join(alternatives, "|") + `)` + colonSuffix)
}

// MatchesPrompt reports whether output starts with one of the password prompts.
// An empty templates list falls back to DefaultPromptL10N.
func MatchesPrompt(output []byte, templates []string) (bool, error) {
	if len(output) == 0 {
		return false, nil
	}
	re, err := PromptPattern(templates)
	if err != nil {
		return false, err
	}
	return re.Match(output), nil
}
