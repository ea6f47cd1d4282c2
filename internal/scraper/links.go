package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
)

// jobLinkRegex matches relative detail-page links with a numeric job id.
var jobLinkRegex = regexp.MustCompile(`^/jobs/\d+`)

// CollectJobLinks pulls candidate detail-page URLs out of a rendered list
// page. Relative links are made absolute against origin, anything with
// "signup" in it is a masked signup funnel and gets dropped, and duplicates
// are collapsed. Set-based dedup: callers must not rely on ordering.
func CollectJobLinks(htmlText, origin string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}

	links := mapset.NewSet[string]()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !jobLinkRegex.MatchString(href) {
			return
		}
		if !strings.HasPrefix(href, "http") {
			href = strings.TrimSuffix(origin, "/") + href
		}
		if strings.Contains(href, "signup") {
			return
		}
		links.Add(href)
	})

	return links.ToSlice()
}
