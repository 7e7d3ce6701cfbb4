package insight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "work-life-balance", Slug("Work-Life Balance"))
	assert.Equal(t, "company-culture", Slug("  Company  Culture "))
	assert.Equal(t, "career-growth", Slug("career_growth"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Work Life Balance", DisplayName("work-life-balance"))
	assert.Equal(t, "Remote Work", DisplayName("remote-work"))
	assert.Equal(t, "Meetings", DisplayName("meetings"))
}

func TestDefaultLexiconSanity(t *testing.T) {
	lex := DefaultLexicon()

	assert.NotEmpty(t, lex.SubThemes)
	assert.NotEmpty(t, lex.PositivePhrases)
	assert.NotEmpty(t, lex.NegativePhrases)
	assert.NotEmpty(t, lex.Topics)
	assert.NotEmpty(t, lex.Emotions)
	assert.NotEmpty(t, lex.SemanticGroups)
	assert.NotEmpty(t, lex.CultureStrengths)
	assert.NotEmpty(t, lex.CultureWeaknesses)
	assert.NotEmpty(t, lex.CultureRisks)
	assert.NotEmpty(t, lex.InterventionRules)
	assert.NotEmpty(t, lex.FallbackActions)
	assert.NotEmpty(t, lex.RiskMitigation.Title)

	for _, tk := range lex.SubThemes {
		assert.Equal(t, tk.Theme, Slug(tk.Theme), "theme keys must already be slugs")
		for _, set := range tk.SubThemes {
			assert.NotEmpty(t, set.Keywords)
		}
	}
}

func TestSubThemesFor(t *testing.T) {
	lex := DefaultLexicon()
	assert.NotEmpty(t, lex.SubThemesFor("Work-Life Balance"))
	assert.NotEmpty(t, lex.SubThemesFor("work-life-balance"))
	assert.Nil(t, lex.SubThemesFor("Parking Situation"))
}

func TestTemplatesFor(t *testing.T) {
	lex := DefaultLexicon()

	wlb := lex.TemplatesFor("Work-Life Balance")
	require.NotEmpty(t, wlb)
	assert.Equal(t, "Introduce flexible working hours", wlb[0].Title)

	fallback := lex.TemplatesFor("Cafeteria Food")
	require.Len(t, fallback, 1)
	assert.Equal(t, "Run a follow-up deep-dive", fallback[0].Title)
}

func TestLoadLexiconEmptyPath(t *testing.T) {
	lex, err := LoadLexicon("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLexicon().PositivePhrases, lex.PositivePhrases)
}

func TestLoadLexiconMissingFile(t *testing.T) {
	_, err := LoadLexicon(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadLexiconInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("positivePhrases: {not a list"), 0o644))

	_, err := LoadLexicon(path)
	assert.Error(t, err)
}

func TestLoadLexiconPartialOverride(t *testing.T) {
	content := `
positivePhrases:
  - "custom praise phrase"
cultureRisks:
  - key: pager-fatigue
    keywords:
      - "on call all night"
      - "pager went off"
`
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"custom praise phrase"}, lex.PositivePhrases)
	require.Len(t, lex.CultureRisks, 1)
	assert.Equal(t, "pager-fatigue", lex.CultureRisks[0].Key)

	// untouched sections keep their defaults
	def := DefaultLexicon()
	assert.Equal(t, def.NegativePhrases, lex.NegativePhrases)
	assert.Equal(t, len(def.Topics), len(lex.Topics))
	assert.Equal(t, def.RiskMitigation.Title, lex.RiskMitigation.Title)
}
