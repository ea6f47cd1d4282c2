package scraper

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const detailPageHTML = `<html><body>
<div class="header">
	<a href="/company/ecolong"><span class="text-sm font-semibold text-black">ecoLong</span></a>
	<ul class="flex items-center text-sm">
		<li class="md:flex-none">$90k – $115k • No equity</li>
		<li>Full-time</li>
	</ul>
	<a href="/location/new-york-city">New York City</a>
</div>
<h1>Senior Backend Engineer</h1>
<div id="job-description">
	<p>We build tools in Python and FastAPI.</p>
	<p>Our stack runs on Docker and PostgreSQL. Visit Google for details.</p>
</div>
<div class="mr-2 mt-2 rounded-3xl border border-gray-400 bg-accent-persian-100 px-2">Python</div>
<div class="mr-2 mt-2 rounded-3xl border border-gray-400 bg-accent-persian-100 px-2">FastAPI</div>
</body></html>`

func TestParseJobDetail(t *testing.T) {
	e := &Extractor{}
	p := e.ParseJobDetail(detailPageHTML, "https://wellfound.com/jobs/123456-senior-backend-engineer")

	assert.Equal(t, "Senior Backend Engineer", p.Title)
	assert.Equal(t, "ecoLong", p.Company)
	assert.Equal(t, "New York City", p.Location)
	assert.Equal(t, "$90k – $115k", p.Stipend)
	assert.Equal(t, "No equity", p.Equity)
	assert.Equal(t, "https://wellfound.com/jobs/123456-senior-backend-engineer", p.ApplyURL)
	assert.Equal(t, 0, p.MatchScore)

	wantDescription := "We build tools in Python and FastAPI.\nOur stack runs on Docker and PostgreSQL. Visit Google for details."
	assert.Equal(t, wantDescription, p.FullDescription)

	assert.Equal(t, []string{"Python", "FastAPI"}, p.UISkills)
	// keyword extraction adds Docker and PostgreSQL from the body text;
	// "Go" must not fire inside "Google" and "SQL" not inside "PostgreSQL"
	assert.ElementsMatch(t, []string{"Python", "FastAPI", "Docker", "PostgreSQL"}, p.Skills)
}

func TestParseJobDetailEmptyMarkup(t *testing.T) {
	e := &Extractor{}
	p := e.ParseJobDetail("", "https://wellfound.com/jobs/1")

	assert.Equal(t, "Unknown Title", p.Title)
	assert.Equal(t, "Unknown", p.Company)
	assert.Equal(t, "Remote", p.Location)
	assert.Equal(t, "Not disclosed", p.Stipend)
	assert.Equal(t, "None", p.Equity)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.UISkills)
	assert.Equal(t, "", p.FullDescription)
	assert.Equal(t, "", p.ShortDescription)
	assert.Equal(t, "https://wellfound.com/jobs/1", p.ApplyURL)
}

func TestParseJobDetailDeterministic(t *testing.T) {
	e := &Extractor{}
	first := e.ParseJobDetail(detailPageHTML, "https://wellfound.com/jobs/123456-x")
	second := e.ParseJobDetail(detailPageHTML, "https://wellfound.com/jobs/123456-x")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestShortDescription(t *testing.T) {
	paragraph1 := strings.Repeat("a", 150)
	paragraph2 := strings.Repeat("b", 100)
	html := `<html><body><div id="job-description"><p>` + paragraph1 + `</p><p>` + paragraph2 + `</p></div></body></html>`

	e := &Extractor{}
	p := e.ParseJobDetail(html, "https://wellfound.com/jobs/2")

	assert.Equal(t, paragraph1+"\n"+paragraph2, p.FullDescription)

	want := strings.ReplaceAll(string([]rune(p.FullDescription)[:200]), "\n", " ") + "..."
	assert.Equal(t, want, p.ShortDescription)
	assert.NotContains(t, p.ShortDescription, "\n")
}

func TestShortDescriptionAlwaysSuffixed(t *testing.T) {
	html := `<html><body><div id="job-description"><p>Short text.</p></div></body></html>`

	e := &Extractor{}
	p := e.ParseJobDetail(html, "https://wellfound.com/jobs/3")

	// the "..." suffix is appended even when nothing was truncated
	assert.Equal(t, "Short text....", p.ShortDescription)
}

func TestStipendWithoutEquitySplit(t *testing.T) {
	html := `<html><body>
<ul class="flex"><li>€60k – €80k</li></ul>
</body></html>`

	e := &Extractor{}
	p := e.ParseJobDetail(html, "https://wellfound.com/jobs/4")

	assert.Equal(t, "€60k – €80k", p.Stipend)
	assert.Equal(t, "None", p.Equity)
}

func TestCustomVocabulary(t *testing.T) {
	html := `<html><body><div id="job-description"><p>We use Elixir and Phoenix here.</p></div></body></html>`

	e := &Extractor{Vocabulary: Vocabulary{"Elixir", "Phoenix", "Rust"}}
	p := e.ParseJobDetail(html, "https://wellfound.com/jobs/5")

	assert.ElementsMatch(t, []string{"Elixir", "Phoenix"}, p.Skills)
}

func TestPostingID(t *testing.T) {
	// same title+company collide regardless of the detail URL, so storage
	// can dedup re-scrapes
	a := PostingID("Senior Backend Engineer", "ecoLong")
	b := PostingID("Senior Backend Engineer", "ecoLong")
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)

	// case-insensitive
	assert.Equal(t, PostingID("Engineer", "Acme"), PostingID("engineer", "acme"))

	// different company, different id
	assert.NotEqual(t, a, PostingID("Senior Backend Engineer", "OtherCo"))
}
