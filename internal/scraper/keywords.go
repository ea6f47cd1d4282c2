package scraper

import (
	"regexp"
	"sync"
)

// Vocabulary is the closed list of technology terms scanned for in
// description text. Matching is word-boundary so "Go" never fires inside
// "Google". The list is injectable so tests can substitute a minimal one.
type Vocabulary []string

// DefaultVocabulary covers the stacks worth surfacing as skills.
var DefaultVocabulary = Vocabulary{
	"Python", "Django", "Flask", "FastAPI", "React", "Next.js", "Vue",
	"Node.js", "TypeScript", "JavaScript", "AWS", "Docker", "Kubernetes",
	"SQL", "PostgreSQL", "MongoDB", "Redis", "Go", "Rust", "C++",
	"Machine Learning", "AI", "LLM", "DevOps", "CI/CD",
}

var (
	termCacheMu sync.Mutex
	termCache   = make(map[string]*regexp.Regexp)
)

func termRegexp(term string) *regexp.Regexp {
	termCacheMu.Lock()
	defer termCacheMu.Unlock()
	if re, ok := termCache[term]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	termCache[term] = re
	return re
}

// ExtractKeywords scans text against the vocabulary and returns every term
// found at a word boundary, in vocabulary order.
func (v Vocabulary) ExtractKeywords(text string) []string {
	var found []string
	for _, term := range v {
		if termRegexp(term).MatchString(text) {
			found = append(found, term)
		}
	}
	return found
}
