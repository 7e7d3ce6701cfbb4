package insight

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pulsecheck/internal/model"
)

// KeywordSet is one named keyword group. Keys use dash separators and are
// turned into display names with DisplayName.
type KeywordSet struct {
	Key      string   `yaml:"key"`
	Keywords []string `yaml:"keywords"`
}

// ThemeKeywords holds the sub-theme keyword table for one theme, addressed
// by the theme's slug (e.g. "work-life-balance").
type ThemeKeywords struct {
	Theme     string       `yaml:"theme"`
	SubThemes []KeywordSet `yaml:"subThemes"`
}

// SemanticGroup maps phrasing variants onto one canonical phrase.
type SemanticGroup struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// InterventionTemplate carries the product-defined constants of one
// recommended action. Nothing here is computed.
type InterventionTemplate struct {
	Title           string            `yaml:"title"`
	Description     string            `yaml:"description"`
	EstimatedImpact float64           `yaml:"estimatedImpact"`
	Effort          model.EffortLevel `yaml:"effort"`
	Timeline        string            `yaml:"timeline"`
	QuickWin        bool              `yaml:"quickWin"`
}

// InterventionRule fires when the theme name contains any of Match
// (case-insensitive) and contributes its templates.
type InterventionRule struct {
	Match     []string               `yaml:"match"`
	Templates []InterventionTemplate `yaml:"templates"`
}

// Lexicon is the full rule configuration of the pipeline: every keyword
// table and intervention template lives here rather than in code, so the
// rule set can be edited and unit-tested without touching pipeline logic.
// All tables are ordered slices; declaration order is the tie-break order
// everywhere the pipeline sorts.
type Lexicon struct {
	SubThemes         []ThemeKeywords        `yaml:"subThemes"`
	PositivePhrases   []string               `yaml:"positivePhrases"`
	NegativePhrases   []string               `yaml:"negativePhrases"`
	Topics            []KeywordSet           `yaml:"topics"`
	Emotions          []KeywordSet           `yaml:"emotions"`
	SemanticGroups    []SemanticGroup        `yaml:"semanticGroups"`
	CultureStrengths  []KeywordSet           `yaml:"cultureStrengths"`
	CultureWeaknesses []KeywordSet           `yaml:"cultureWeaknesses"`
	CultureRisks      []KeywordSet           `yaml:"cultureRisks"`
	InterventionRules []InterventionRule     `yaml:"interventionRules"`
	FallbackActions   []InterventionTemplate `yaml:"fallbackActions"`
	RiskMitigation    InterventionTemplate   `yaml:"riskMitigation"`
}

// SubThemesFor returns the sub-theme table for a theme name, or nil when the
// lexicon has no entry for it.
func (l *Lexicon) SubThemesFor(themeName string) []KeywordSet {
	slug := Slug(themeName)
	for i := range l.SubThemes {
		if l.SubThemes[i].Theme == slug {
			return l.SubThemes[i].SubThemes
		}
	}
	return nil
}

// TemplatesFor picks the intervention templates whose rule matches the theme
// name, falling back to the generic actions when no rule fires.
func (l *Lexicon) TemplatesFor(themeName string) []InterventionTemplate {
	name := strings.ToLower(themeName)
	for i := range l.InterventionRules {
		for _, m := range l.InterventionRules[i].Match {
			if strings.Contains(name, m) {
				return l.InterventionRules[i].Templates
			}
		}
	}
	return l.FallbackActions
}

// Slug lowercases a theme name and joins words with dashes so display names
// and lexicon keys line up ("Work-Life Balance" -> "work-life-balance").
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// DisplayName turns a lexicon key into a title-cased label
// ("work-life-balance" -> "Work Life Balance").
func DisplayName(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// LoadLexicon reads a YAML lexicon from path. Sections left empty in the
// file fall back to the built-in defaults, so an override file only needs
// the tables it changes. An empty path returns the defaults untouched.
func LoadLexicon(path string) (*Lexicon, error) {
	def := DefaultLexicon()
	if path == "" {
		return def, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	var loaded Lexicon
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	merged := *def
	if len(loaded.SubThemes) > 0 {
		merged.SubThemes = loaded.SubThemes
	}
	if len(loaded.PositivePhrases) > 0 {
		merged.PositivePhrases = loaded.PositivePhrases
	}
	if len(loaded.NegativePhrases) > 0 {
		merged.NegativePhrases = loaded.NegativePhrases
	}
	if len(loaded.Topics) > 0 {
		merged.Topics = loaded.Topics
	}
	if len(loaded.Emotions) > 0 {
		merged.Emotions = loaded.Emotions
	}
	if len(loaded.SemanticGroups) > 0 {
		merged.SemanticGroups = loaded.SemanticGroups
	}
	if len(loaded.CultureStrengths) > 0 {
		merged.CultureStrengths = loaded.CultureStrengths
	}
	if len(loaded.CultureWeaknesses) > 0 {
		merged.CultureWeaknesses = loaded.CultureWeaknesses
	}
	if len(loaded.CultureRisks) > 0 {
		merged.CultureRisks = loaded.CultureRisks
	}
	if len(loaded.InterventionRules) > 0 {
		merged.InterventionRules = loaded.InterventionRules
	}
	if len(loaded.FallbackActions) > 0 {
		merged.FallbackActions = loaded.FallbackActions
	}
	if loaded.RiskMitigation.Title != "" {
		merged.RiskMitigation = loaded.RiskMitigation
	}
	return &merged, nil
}
