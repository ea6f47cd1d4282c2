package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/prannavdeshpande/foundry/internal/scraper"
)

func TestBuildUserPromptTruncatesOnRunes(t *testing.T) {
	posting := scraper.Posting{
		Title:           "Engineer",
		Company:         "Acme",
		FullDescription: strings.Repeat("é", 301),
	}

	prompt := buildUserPrompt(posting, []string{"Go"})

	// cutting on bytes would split the two-byte rune and corrupt the prompt
	assert.True(t, utf8.ValidString(prompt))
	assert.Contains(t, prompt, strings.Repeat("é", 300))
	assert.NotContains(t, prompt, strings.Repeat("é", 301))
}

func TestBuildUserPromptShortDescriptionUntouched(t *testing.T) {
	posting := scraper.Posting{FullDescription: "Short description."}

	prompt := buildUserPrompt(posting, nil)
	assert.Contains(t, prompt, "Short description.")
}
