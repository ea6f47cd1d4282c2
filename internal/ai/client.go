package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/prannavdeshpande/foundry/internal/scraper"
)

// Client is the interface for AI providers
type Client interface {
	// GenerateCoverLetter writes a short cover letter for the posting,
	// grounded in the applicant's skills and the skills that matched.
	GenerateCoverLetter(ctx context.Context, posting scraper.Posting, applicantSkills []string) (string, error)
}

// buildSystemPrompt creates the system instruction for the AI model
func buildSystemPrompt() string {
	return "You are a professional career coach helping write concise, compelling cover letters."
}

// buildUserPrompt combines the posting and the applicant's skills
func buildUserPrompt(posting scraper.Posting, applicantSkills []string) string {
	description := posting.FullDescription
	if runes := []rune(description); len(runes) > 300 {
		description = string(runes[:300])
	}

	return fmt.Sprintf(`Generate a professional cover letter for this job application:

Job Title: %s
Company: %s
Job Description: %s

My Skills: %s
Matched Skills: %s

Requirements:
- Keep it concise (3-4 paragraphs)
- Highlight relevant skills and experience
- Show enthusiasm for the role
- Professional but friendly tone
- Do NOT include placeholders like [Your Name]

Generate only the cover letter body, no subject line or signature.
`,
		posting.Title,
		posting.Company,
		description,
		strings.Join(applicantSkills, ", "),
		strings.Join(posting.MatchedSkills, ", "),
	)
}
