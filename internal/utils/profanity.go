package utils

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// ProfanityFilter masks banned words with '*' of the same rune length.
// ASCII words are matched case-insensitively on word boundaries; anything
// else is matched as a plain substring.
type ProfanityFilter struct {
	patterns []*regexp.Regexp
}

// DefaultBannedWords is a small starter list; extend with PROFANITY_WORDS.
var DefaultBannedWords = []string{
	"fuck", "fucking", "fucker", "motherfucker", "shit", "bullshit",
	"bastard", "bitch", "dick", "cock", "pussy", "cunt",
	"asshole", "dumbass", "jackass", "retard", "slut", "whore",
	"faggot", "douche", "douchebag", "wanker", "twat", "prick",
	"arsehole", "bollocks", "cocksucker", "shithead", "dipshit", "dumbfuck",
}

// NewDefaultProfanityFilter combines DefaultBannedWords with a
// comma-separated list of extra words.
func NewDefaultProfanityFilter(extra string) *ProfanityFilter {
	words := append([]string{}, DefaultBannedWords...)
	for _, w := range strings.Split(extra, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return NewProfanityFilter(words)
}

func NewProfanityFilter(words []string) *ProfanityFilter {
	uniq := make([]string, 0, len(words))
	seen := map[string]struct{}{}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	// longer words first so substrings don't pre-empt them
	sort.Slice(uniq, func(i, j int) bool {
		return len([]rune(uniq[i])) > len([]rune(uniq[j]))
	})

	pats := make([]*regexp.Regexp, 0, len(uniq))
	for _, w := range uniq {
		pattern := regexp.QuoteMeta(w)
		if isASCIIWord(w) {
			pattern = `(?i)\b` + pattern + `\b`
		}
		pats = append(pats, regexp.MustCompile(pattern))
	}
	return &ProfanityFilter{patterns: pats}
}

func (pf *ProfanityFilter) Mask(s string) string {
	if pf == nil || len(pf.patterns) == 0 || s == "" {
		return s
	}
	out := s
	for _, re := range pf.patterns {
		out = re.ReplaceAllStringFunc(out, func(m string) string {
			return strings.Repeat("*", len([]rune(m)))
		})
	}
	return out
}

func isASCIIWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
