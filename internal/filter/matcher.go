// Relevance scoring of postings against a user profile.
//
// Scoring:
// - profile skill found in the posting text: +10 each
// - profile keyword found: +5 each
// - location match: +15, awarded at most once
// - normalized to a 0-100 scale against the profile's max possible
//
// Skill and keyword tests are plain substring matches over the lowercased
// haystack ("go" fires inside "mongodb"). That is looser than the
// word-boundary matching the extractor uses for its vocabulary; the two are
// intentionally kept apart.

package filter

import (
	"sort"
	"strings"

	"github.com/prannavdeshpande/foundry/internal/scraper"
)

// MatchResult is what one scoring pass produced. It is merged into the
// Posting by the caller rather than mutated in place, which keeps Match a
// pure function.
type MatchResult struct {
	Score           int
	MatchedSkills   []string
	MatchedKeywords []string
	LocationMatch   bool
}

// Match scores a posting against the profile. Deterministic for identical
// inputs; the +15 constant in the denominator means it never divides by
// zero even for an empty profile.
func Match(p scraper.Posting, profile Profile) MatchResult {
	haystack := strings.ToLower(p.Title + " " + p.FullDescription + " " + strings.Join(p.Skills, " "))

	var result MatchResult
	raw := 0

	for _, skill := range profile.Skills {
		if strings.Contains(haystack, skill) {
			raw += 10
			result.MatchedSkills = append(result.MatchedSkills, skill)
		}
	}

	for _, keyword := range profile.Keywords {
		if strings.Contains(haystack, keyword) {
			raw += 5
			result.MatchedKeywords = append(result.MatchedKeywords, keyword)
		}
	}

	location := strings.ToLower(p.Location)
	for _, loc := range profile.Locations {
		if strings.Contains(location, loc) {
			raw += 15
			result.LocationMatch = true
			break
		}
	}

	maxPossible := len(profile.Skills)*10 + len(profile.Keywords)*5 + 15
	if maxPossible > 0 {
		score := raw * 100 / maxPossible
		if score > 100 {
			score = 100
		}
		result.Score = score
	}

	return result
}

// Annotate merges a match result into the posting. Overwrites whatever a
// previous scoring pass left behind.
func Annotate(p *scraper.Posting, r MatchResult) {
	p.MatchScore = r.Score
	p.MatchedSkills = r.MatchedSkills
	p.MatchedKeywords = r.MatchedKeywords
	p.LocationMatch = r.LocationMatch
}

// Summary renders a short human-readable view of why a posting matched.
func Summary(p scraper.Posting) string {
	var parts []string

	if len(p.MatchedSkills) > 0 {
		n := len(p.MatchedSkills)
		if n > 5 {
			n = 5
		}
		parts = append(parts, "Skills: "+strings.Join(p.MatchedSkills[:n], ", "))
	}

	if len(p.MatchedKeywords) > 0 {
		n := len(p.MatchedKeywords)
		if n > 3 {
			n = 3
		}
		parts = append(parts, "Keywords: "+strings.Join(p.MatchedKeywords[:n], ", "))
	}

	if p.LocationMatch {
		parts = append(parts, "Location: "+p.Location)
	}

	if len(parts) == 0 {
		return "General match"
	}
	return strings.Join(parts, " | ")
}

// FilterPostings scores every posting, keeps those at or above the
// profile threshold and returns them sorted by score descending. The sort
// is stable so ties keep their original relative order.
func FilterPostings(postings []scraper.Posting, profile Profile) []scraper.Posting {
	var matched []scraper.Posting
	for _, p := range postings {
		Annotate(&p, Match(p, profile))
		if p.MatchScore >= profile.MinMatchScore {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})

	return matched
}
