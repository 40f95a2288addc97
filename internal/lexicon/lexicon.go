// ABOUTME: Controlled vocabulary for dream analysis
// ABOUTME: Symbol words, theme keyword sets, and dream type keywords
package lexicon

import (
	"sort"
	"strings"
)

// Theme labels in declaration order. DNA ties keep this order.
const (
	ThemeConflictFear       = "Conflict/Fear"
	ThemeAchievementControl = "Achievement/Control"
	ThemeVulnerability      = "Vulnerability/Insecurity"
	ThemeTransitionChange   = "Transition/Change"
	ThemeSelfIdentity       = "Self/Identity"
	ThemeDesireNeed         = "Desire/Need"
)

var defaultSymbols = []string{
	"teeth", "falling", "flying", "chased", "water", "ocean", "river", "lake",
	"snake", "spider", "dog", "cat", "baby", "death", "house", "home", "school",
	"exam", "test", "naked", "lost", "trapped", "car", "vehicle", "road",
	"journey", "money", "food", "monster", "friend", "family", "stranger",
	"celebrity", "fire", "blood", "door", "window", "key", "box", "mirror",
	"phone", "computer", "tree", "forest", "mountain", "sky", "sun", "moon",
	"stars", "book", "library", "supermarket", "cereal", "cloud", "bicycle",
	"pit", "dust", "hands",
}

var defaultThemes = []Theme{
	{Label: ThemeConflictFear, Keywords: []string{"fight", "argument", "chased", "monster", "nightmare", "afraid", "scary", "spider", "snake", "falling", "trapped", "attack"}},
	{Label: ThemeAchievementControl, Keywords: []string{"flying", "win", "success", "control", "driving", "leading", "summit", "pass", "exam", "test"}},
	{Label: ThemeVulnerability, Keywords: []string{"naked", "lost", "teeth", "falling", "fail", "exam", "test", "forgot", "late"}},
	{Label: ThemeTransitionChange, Keywords: []string{"death", "baby", "journey", "road", "door", "key", "moving", "travel"}},
	{Label: ThemeSelfIdentity, Keywords: []string{"mirror", "house", "home", "room", "clothes", "face", "body"}},
	{Label: ThemeDesireNeed, Keywords: []string{"food", "money", "sex", "love", "hug", "kiss", "water", "drink"}},
}

var (
	nightmareKeywords = []string{"nightmare", "scary", "terrifying", "afraid", "disturbing"}
	lucidKeywords     = []string{"lucid", "aware i was dreaming", "control the dream"}
)

// Theme is a labelled keyword set.
type Theme struct {
	Label    string
	Keywords []string
}

// Lexicon is built once at startup and never mutated afterwards, so a single
// value can be shared by every request.
type Lexicon struct {
	symbols   map[string]struct{}
	themes    []Theme
	themeSets []map[string]struct{}
	nightmare []string
	lucid     []string
}

// Default returns the built-in dream vocabulary.
func Default() *Lexicon {
	return New(defaultSymbols, defaultThemes)
}

// New builds a lexicon from a symbol list and theme definitions. Words are
// lower-cased; the type keyword lists are always the built-in ones.
func New(symbols []string, themes []Theme) *Lexicon {
	l := &Lexicon{
		symbols:   make(map[string]struct{}, len(symbols)),
		nightmare: append([]string(nil), nightmareKeywords...),
		lucid:     append([]string(nil), lucidKeywords...),
	}
	for _, s := range symbols {
		l.symbols[strings.ToLower(s)] = struct{}{}
	}
	for _, t := range themes {
		set := make(map[string]struct{}, len(t.Keywords))
		kw := make([]string, 0, len(t.Keywords))
		for _, k := range t.Keywords {
			k = strings.ToLower(k)
			if _, dup := set[k]; dup {
				continue
			}
			set[k] = struct{}{}
			kw = append(kw, k)
		}
		l.themes = append(l.themes, Theme{Label: t.Label, Keywords: kw})
		l.themeSets = append(l.themeSets, set)
	}
	return l
}

// IsSymbol reports whether word is in the symbol vocabulary.
func (l *Lexicon) IsSymbol(word string) bool {
	_, ok := l.symbols[word]
	return ok
}

// Symbols returns the vocabulary sorted alphabetically.
func (l *Lexicon) Symbols() []string {
	out := make([]string, 0, len(l.symbols))
	for s := range l.symbols {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Themes returns a copy of the theme definitions in declaration order.
func (l *Lexicon) Themes() []Theme {
	out := make([]Theme, len(l.themes))
	for i, t := range l.themes {
		out[i] = Theme{Label: t.Label, Keywords: append([]string(nil), t.Keywords...)}
	}
	return out
}

// ThemeHits counts, per theme in declaration order, how many distinct
// keywords of that theme appear in words.
func (l *Lexicon) ThemeHits(words map[string]struct{}) []int {
	hits := make([]int, len(l.themes))
	for i, set := range l.themeSets {
		for k := range set {
			if _, ok := words[k]; ok {
				hits[i]++
			}
		}
	}
	return hits
}

// NightmareKeywords returns the keywords that mark a nightmare.
func (l *Lexicon) NightmareKeywords() []string {
	return append([]string(nil), l.nightmare...)
}

// LucidKeywords returns the keywords that mark a lucid dream.
func (l *Lexicon) LucidKeywords() []string {
	return append([]string(nil), l.lucid...)
}
