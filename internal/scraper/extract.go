// Wellfound detail-page extractor.
// Turns already-fetched markup into a normalized Posting. Every field has a
// defined fallback, so parsing never fails no matter how broken the input
// is. The class-name heuristics track Wellfound's current markup and are
// expected to break on redesigns.

package scraper

import (
	"crypto/md5"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	fallbackTitle    = "Unknown Title"
	fallbackCompany  = "Unknown"
	fallbackLocation = "Remote"
	fallbackStipend  = "Not disclosed"
	fallbackEquity   = "None"

	shortDescriptionLen = 200
)

var (
	semiboldSpanRegex = regexp.MustCompile(`font-semibold`)
	flexListRegex     = regexp.MustCompile(`flex`)
	skillPillRegex    = regexp.MustCompile(`rounded-3xl.*bg-accent-persian-100`)
)

// Extractor parses detail-page markup into Postings. The keyword vocabulary
// is injectable; zero value uses DefaultVocabulary.
type Extractor struct {
	Vocabulary Vocabulary
}

func (e *Extractor) vocabulary() Vocabulary {
	if e.Vocabulary != nil {
		return e.Vocabulary
	}
	return DefaultVocabulary
}

// ParseJobDetail extracts a Posting from a detail page. It is total over
// any input string: unparseable or missing fields degrade to fallbacks,
// never to an error.
func (e *Extractor) ParseJobDetail(htmlText, sourceURL string) Posting {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		// goquery's parser is lenient enough that this path is close to
		// unreachable, but the contract stays total either way.
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}

	// 1. Title
	title := fallbackTitle
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		title = strings.TrimSpace(h1.Text())
	}

	// 2. Company
	// The semibold span lookup is document-wide rather than scoped under
	// the company link. Known looseness, kept to match the page heuristic.
	company := fallbackCompany
	if doc.Find(`a[href^="/company/"]`).Length() > 0 {
		span := findByClass(doc, "span", semiboldSpanRegex).First()
		if span.Length() > 0 {
			company = strings.TrimSpace(span.Text())
		}
	}

	// 3. Stipend / Equity
	// Header row looks like: <li>$90k – $115k • No equity</li>
	stipend, equity := fallbackStipend, fallbackEquity
	if headerUl := findByClass(doc, "ul", flexListRegex).First(); headerUl.Length() > 0 {
		headerUl.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
			text := strings.TrimSpace(li.Text())
			if !strings.ContainsAny(text, "$€£") {
				return true
			}
			if strings.Contains(text, "•") {
				parts := strings.SplitN(text, "•", 2)
				stipend = strings.TrimSpace(parts[0])
				if len(parts) > 1 {
					equity = strings.TrimSpace(parts[1])
				}
			} else {
				stipend = text
			}
			return false
		})
	}

	// 4. Description & short description
	var fullDescription, shortDescription string
	if descDiv := doc.Find("#job-description"); descDiv.Length() > 0 {
		fullDescription = textJoinedByNewlines(descDiv)
		shortDescription = shorten(fullDescription)
	}

	// 5. Skill pills tagged in the UI
	var uiSkills []string
	findByClass(doc, "div", skillPillRegex).Each(func(_ int, tag *goquery.Selection) {
		uiSkills = append(uiSkills, strings.TrimSpace(tag.Text()))
	})

	// 6.+7. Keywords from the description, unioned with the UI tags
	extracted := e.vocabulary().ExtractKeywords(fullDescription)
	allSkills := uniqueStrings(append(append([]string{}, uiSkills...), extracted...))

	// 8. Location
	location := fallbackLocation
	if locTag := doc.Find(`a[href*="/location/"]`).First(); locTag.Length() > 0 {
		location = strings.TrimSpace(locTag.Text())
	}

	return Posting{
		ID:               PostingID(title, company),
		Title:            title,
		Company:          company,
		Location:         location,
		Stipend:          stipend,
		Equity:           equity,
		Skills:           allSkills,
		UISkills:         uiSkills,
		ShortDescription: shortDescription,
		FullDescription:  fullDescription,
		ApplyURL:         sourceURL,
		MatchScore:       0,
	}
}

// PostingID derives the stable storage identity from title and company.
// Truncated digest: collisions are possible and accepted, repeated scrapes
// of the same posting collide on purpose so inserts can dedup.
func PostingID(title, company string) string {
	unique := strings.ToLower(title + "_" + company)
	return fmt.Sprintf("%x", md5.Sum([]byte(unique)))[:16]
}

// shorten flattens newlines and cuts to the preview length. The "..."
// suffix is appended unconditionally, even when nothing was cut.
func shorten(full string) string {
	runes := []rune(full)
	if len(runes) > shortDescriptionLen {
		runes = runes[:shortDescriptionLen]
	}
	return strings.ReplaceAll(string(runes), "\n", " ") + "..."
}

// findByClass returns elements of the given tag whose class attribute
// matches the pattern. goquery's attribute selectors only do literal
// matching, so the regexes used by the heuristics go through here.
func findByClass(doc *goquery.Document, tag string, pattern *regexp.Regexp) *goquery.Selection {
	return doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && pattern.MatchString(class)
	})
}

// textJoinedByNewlines collects the text nodes under the selection,
// trimming each and joining with newlines, skipping whitespace-only nodes.
func textJoinedByNewlines(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

// uniqueStrings removes duplicates keeping first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
