package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prannavdeshpande/foundry/internal/scraper"
)

func TestFormatPostingEscapesMarkdown(t *testing.T) {
	p := scraper.Posting{
		Title:         "Back_end Engineer (Go)",
		Company:       "Dots.and-dashes!",
		Location:      "Remote",
		MatchScore:    85,
		MatchedSkills: []string{"go", "docker"},
		ApplyURL:      "https://wellfound.com/jobs/123456-backend",
	}

	msg := FormatPosting(p)

	assert.Contains(t, msg, "Score: 85/100")
	assert.Contains(t, msg, `Back\_end Engineer \(Go\)`)
	assert.Contains(t, msg, `Dots\.and\-dashes\!`)
	assert.Contains(t, msg, "go, docker")
	assert.Contains(t, msg, "(https://wellfound.com/jobs/123456-backend)")
}

func TestFormatPostingNoMatchedSkills(t *testing.T) {
	msg := FormatPosting(scraper.Posting{Title: "Engineer"})
	assert.Contains(t, msg, "See description")
}

func TestFormatPostingCapsMatchedSkills(t *testing.T) {
	p := scraper.Posting{
		Title:         "Engineer",
		MatchedSkills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	msg := FormatPosting(p)
	assert.Contains(t, msg, "a, b, c, d, e")
	assert.NotContains(t, msg, ", f")
}

func TestBuildBatchMessages(t *testing.T) {
	postings := make([]scraper.Posting, 7)
	for i := range postings {
		postings[i] = scraper.Posting{Title: "Job", MatchScore: i * 10}
	}

	messages := buildBatchMessages(postings, 3)

	// ceil(7/3) = 3 messages, header only on the first
	if assert.Len(t, messages, 3) {
		assert.Contains(t, messages[0], "7 new matches")
		assert.NotContains(t, messages[1], "new matches")
		assert.Equal(t, 3, strings.Count(messages[0], "New Job Match"))
		assert.Equal(t, 3, strings.Count(messages[1], "New Job Match"))
		assert.Equal(t, 1, strings.Count(messages[2], "New Job Match"))
	}
}

func TestBuildBatchMessagesDefaultBatchSize(t *testing.T) {
	postings := make([]scraper.Posting, 6)
	for i := range postings {
		postings[i] = scraper.Posting{Title: "Job"}
	}

	// non-positive batch size falls back to 5 per message
	messages := buildBatchMessages(postings, 0)
	assert.Len(t, messages, 2)
}

func TestBatchPostings(t *testing.T) {
	postings := make([]scraper.Posting, 7)
	for i := range postings {
		postings[i] = scraper.Posting{ID: fmt.Sprintf("p%d", i)}
	}

	batches := batchPostings(postings, 3)

	if assert.Len(t, batches, 3) {
		assert.Len(t, batches[0], 3)
		assert.Len(t, batches[1], 3)
		assert.Len(t, batches[2], 1)
		assert.Equal(t, "p0", batches[0][0].ID)
		assert.Equal(t, "p6", batches[2][0].ID)
	}
}

func TestSendJobAlertsReturnsOnlySentPostings(t *testing.T) {
	postings := make([]scraper.Posting, 5)
	for i := range postings {
		postings[i] = scraper.Posting{ID: fmt.Sprintf("p%d", i)}
	}

	calls := 0
	b := &Bot{
		send: func(string) error {
			calls++
			if calls == 2 {
				return errors.New("telegram: 429 Too Many Requests")
			}
			return nil
		},
	}

	sent := b.SendJobAlerts(postings, 2)

	// the second batch (p2, p3) failed; only delivered postings come back,
	// so the caller never marks undelivered rows as notified
	assert.Equal(t, 3, calls)
	var ids []string
	for _, p := range sent {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p0", "p1", "p4"}, ids)
}

func TestSendJobAlertsAllBatchesFail(t *testing.T) {
	b := &Bot{
		send: func(string) error { return errors.New("network down") },
	}

	sent := b.SendJobAlerts(make([]scraper.Posting, 4), 2)
	assert.Empty(t, sent)
}

func TestSendJobAlertsPausesBetweenBatches(t *testing.T) {
	b := &Bot{
		send:       func(string) error { return nil },
		batchDelay: 20 * time.Millisecond,
	}

	start := time.Now()
	sent := b.SendJobAlerts(make([]scraper.Posting, 6), 2)

	// three batches, two pauses in between
	assert.Len(t, sent, 6)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}
