package telegram

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prannavdeshpande/foundry/internal/scraper"
)

type Bot struct {
	api        *tgbotapi.BotAPI
	chatID     int64
	send       func(text string) error
	batchDelay time.Duration
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	b := &Bot{
		api:        api,
		chatID:     chatID,
		batchDelay: time.Second,
	}
	b.send = b.sendMarkdown
	return b, nil
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// FormatPosting renders one posting as a MarkdownV2 message block.
func FormatPosting(p scraper.Posting) string {
	skillsStr := "See description"
	if len(p.MatchedSkills) > 0 {
		matched := p.MatchedSkills
		if len(matched) > 5 {
			matched = matched[:5]
		}
		skillsStr = escapeMarkdown(strings.Join(matched, ", "))
	}

	msg := fmt.Sprintf("🚀 *New Job Match\\!* \\(Score: %d/100\\)\n\n", p.MatchScore)
	msg += fmt.Sprintf("📋 *Title:* %s\n", escapeMarkdown(p.Title))
	msg += fmt.Sprintf("🏢 *Company:* %s\n", escapeMarkdown(p.Company))
	msg += fmt.Sprintf("📍 *Location:* %s\n\n", escapeMarkdown(p.Location))
	msg += fmt.Sprintf("💡 *Matched Skills:* %s\n\n", skillsStr)
	msg += fmt.Sprintf("🔗 [Apply Now](%s)\n\n", p.ApplyURL)
	msg += "───────────────────\n"

	return msg
}

func (b *Bot) sendMarkdown(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = "MarkdownV2"
	_, err := b.api.Send(msg)
	return err
}

// batchPostings splits postings into groups of at most batchSize each,
// preserving order.
func batchPostings(postings []scraper.Posting, batchSize int) [][]scraper.Posting {
	if batchSize <= 0 {
		batchSize = 5
	}

	var batches [][]scraper.Posting
	for i := 0; i < len(postings); i += batchSize {
		end := i + batchSize
		if end > len(postings) {
			end = len(postings)
		}
		batches = append(batches, postings[i:end])
	}
	return batches
}

// buildBatchMessages renders one message per batch. The first message
// carries a header with the match count.
func buildBatchMessages(postings []scraper.Posting, batchSize int) []string {
	header := fmt.Sprintf("📬 *Daily Job Alert* \\- %d new matches\\!\n\n", len(postings))

	var messages []string
	for i, batch := range batchPostings(postings, batchSize) {
		var sb strings.Builder
		if i == 0 {
			sb.WriteString(header)
		}
		for _, p := range batch {
			sb.WriteString(FormatPosting(p))
		}
		messages = append(messages, sb.String())
	}

	return messages
}

// SendJobAlerts pushes postings in batches of at most batchSize per message,
// pausing between sends to stay under Telegram rate limits. It returns the
// postings whose batch actually went out, so callers mark only those as
// notified.
func (b *Bot) SendJobAlerts(postings []scraper.Posting, batchSize int) []scraper.Posting {
	if len(postings) == 0 {
		return nil
	}

	batches := batchPostings(postings, batchSize)
	messages := buildBatchMessages(postings, batchSize)

	var sent []scraper.Posting
	for i, message := range messages {
		if i > 0 {
			time.Sleep(b.batchDelay)
		}
		if err := b.send(message); err != nil {
			log.Printf("⚠️ Failed to send batch %d: %v", i+1, err)
			continue
		}
		sent = append(sent, batches[i]...)
	}

	return sent
}

// RunStats is the summary pushed after a run.
type RunStats struct {
	Scraped  int
	Matched  int
	Sent     int
	AvgScore float64
}

func (b *Bot) SendSummary(stats RunStats) error {
	msg := "📊 *Automation Summary*\n\n"
	msg += fmt.Sprintf("🔍 Total jobs scraped: %d\n", stats.Scraped)
	msg += fmt.Sprintf("✅ Jobs matched: %d\n", stats.Matched)
	msg += fmt.Sprintf("📨 Alerts sent: %d\n", stats.Sent)
	msg += fmt.Sprintf("⭐ Avg match score: %s\n", escapeMarkdown(fmt.Sprintf("%.1f", stats.AvgScore)))
	return b.sendMarkdown(msg)
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
