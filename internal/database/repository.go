package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prannavdeshpande/foundry/internal/scraper"
)

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// InitSchema creates the jobs table if it doesn't exist yet.
func (r *Repository) InitSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id SERIAL PRIMARY KEY,
			job_id TEXT UNIQUE,
			title TEXT NOT NULL,
			company TEXT,
			location TEXT,
			stipend TEXT,
			equity TEXT,
			description TEXT,
			short_description TEXT,
			skills TEXT,
			ui_skills TEXT,
			apply_url TEXT NOT NULL,
			match_score INTEGER DEFAULT 0,
			notified BOOLEAN DEFAULT FALSE,
			cover_letter TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create jobs table: %w", err)
	}
	return nil
}

// StoredPosting is a jobs row read back out of the database.
type StoredPosting struct {
	DBID int64
	scraper.Posting
	Notified    bool
	CoverLetter string
	CreatedAt   time.Time
}

// ---------------- JOB OPERATIONS ----------------

// SavePostings inserts postings, silently skipping any whose job_id already
// exists (re-scrapes of the same title+company collapse to one row).
// Returns the count of newly inserted rows.
func (r *Repository) SavePostings(ctx context.Context, postings []scraper.Posting) (int, error) {
	query := `
		INSERT INTO jobs (
			job_id, title, company, location,
			stipend, equity, description, short_description,
			skills, ui_skills, apply_url, match_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (job_id) DO NOTHING`

	inserted := 0
	for _, p := range postings {
		skillsJSON, err := json.Marshal(p.Skills)
		if err != nil {
			log.Printf("⚠️ Failed to marshal skills for %s: %v", p.Title, err)
			continue
		}
		uiSkillsJSON, err := json.Marshal(p.UISkills)
		if err != nil {
			log.Printf("⚠️ Failed to marshal ui_skills for %s: %v", p.Title, err)
			continue
		}

		tag, err := r.db.Exec(ctx, query,
			p.ID, p.Title, p.Company, p.Location,
			p.Stipend, p.Equity, p.FullDescription, p.ShortDescription,
			string(skillsJSON), string(uiSkillsJSON), p.ApplyURL, p.MatchScore,
		)
		if err != nil {
			log.Printf("⚠️ Failed to save posting %s: %v", p.Title, err)
			continue
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// GetUnnotifiedPostings returns rows that haven't been pushed to Telegram
// yet, at or above minScore, best matches first then newest first.
func (r *Repository) GetUnnotifiedPostings(ctx context.Context, minScore int) ([]StoredPosting, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, job_id, title, company, location, stipend, equity,
		       description, short_description, skills, ui_skills, apply_url,
		       match_score, notified, COALESCE(cover_letter, ''), created_at
		FROM jobs
		WHERE notified = FALSE AND match_score >= $1
		ORDER BY match_score DESC, created_at DESC`, minScore)
	if err != nil {
		return nil, fmt.Errorf("failed to query unnotified postings: %w", err)
	}
	defer rows.Close()

	var postings []StoredPosting
	for rows.Next() {
		var sp StoredPosting
		var skillsJSON, uiSkillsJSON string
		if err := rows.Scan(
			&sp.DBID, &sp.ID, &sp.Title, &sp.Company, &sp.Location,
			&sp.Stipend, &sp.Equity, &sp.FullDescription, &sp.ShortDescription,
			&skillsJSON, &uiSkillsJSON, &sp.ApplyURL,
			&sp.MatchScore, &sp.Notified, &sp.CoverLetter, &sp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan posting row: %w", err)
		}

		if err := json.Unmarshal([]byte(skillsJSON), &sp.Skills); err != nil {
			sp.Skills = nil
		}
		if err := json.Unmarshal([]byte(uiSkillsJSON), &sp.UISkills); err != nil {
			sp.UISkills = nil
		}

		postings = append(postings, sp)
	}

	return postings, rows.Err()
}

// MarkNotified flags the given job ids as alerted so later runs skip them.
// Rows not named here stay unnotified and get another chance next run.
func (r *Repository) MarkNotified(ctx context.Context, jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `UPDATE jobs SET notified = TRUE WHERE job_id = ANY($1)`, jobIDs)
	if err != nil {
		return fmt.Errorf("failed to mark postings notified: %w", err)
	}
	return nil
}

// SaveCoverLetter stores a generated cover letter on an existing row.
func (r *Repository) SaveCoverLetter(ctx context.Context, jobID string, coverLetter string) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET cover_letter = $1 WHERE job_id = $2`, coverLetter, jobID)
	if err != nil {
		return fmt.Errorf("failed to save cover letter: %w", err)
	}
	return nil
}

// Stats summarizes the jobs table.
type Stats struct {
	TotalJobs     int     `json:"total_jobs"`
	Notified      int     `json:"notified"`
	Pending       int     `json:"pending"`
	AvgMatchScore float64 `json:"avg_match_score"`
}

func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE notified),
		       COALESCE(AVG(match_score), 0)
		FROM jobs`).Scan(&s.TotalJobs, &s.Notified, &s.AvgMatchScore)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	s.Pending = s.TotalJobs - s.Notified
	return &s, nil
}
