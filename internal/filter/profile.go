package filter

import "strings"

// DefaultMinMatchScore is the threshold used when the profile doesn't set one.
const DefaultMinMatchScore = 50

// Profile holds the user's matching preferences. Terms are lowercased once
// at construction so every scoring pass works on normalized input.
type Profile struct {
	Skills        []string
	Keywords      []string
	Locations     []string
	MinMatchScore int
}

// NewProfile normalizes the raw lists from config. Missing lists are fine
// (they just contribute nothing to the score), a zero threshold falls back
// to DefaultMinMatchScore.
func NewProfile(skills, keywords, locations []string, minMatchScore int) Profile {
	if minMatchScore <= 0 {
		minMatchScore = DefaultMinMatchScore
	}
	return Profile{
		Skills:        lowerAll(skills),
		Keywords:      lowerAll(keywords),
		Locations:     lowerAll(locations),
		MinMatchScore: minMatchScore,
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
