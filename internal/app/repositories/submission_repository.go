package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/pkg/helpers"
)

var submissionColumns = []string{
	"id", "name", "email", "phone", "linkedin_id", "portfolio_description", "category",
	"portfolio_file_name", "portfolio_file_url", "redesign_file_name", "redesign_file_url",
	"status", "created_at",
}

// PostgresSubmissionRepository handles database operations for submissions
type PostgresSubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{db: db}
}

// Create inserts a submission
func (r *PostgresSubmissionRepository) Create(ctx context.Context, s *models.Submission) error {
	sql, args, err := insertSubmissionQuery(s).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting submission: %w", err)
	}
	return nil
}

// List returns one page of submissions, newest first, and the total count
func (r *PostgresSubmissionRepository) List(ctx context.Context, offset, limit uint64) ([]models.Submission, int64, error) {
	sql, args, err := listSubmissionsQuery(offset, limit).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	submissions := make([]models.Submission, 0)
	var total int64
	for rows.Next() {
		var (
			s                      models.Submission
			portfolioName, portURL *string
			redesignName, redURL   *string
		)
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Phone,
			&s.LinkedinID,
			&s.PortfolioDescription,
			&s.Category,
			&portfolioName,
			&portURL,
			&redesignName,
			&redURL,
			&s.Status,
			&s.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		s.PortfolioFile = fileRef(portfolioName, portURL)
		s.RedesignFile = fileRef(redesignName, redURL)
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	if len(submissions) == 0 && offset > 0 {
		// Past the last page the window count is unavailable
		if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM submissions").Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("error counting submissions: %w", err)
		}
	}

	return submissions, total, nil
}

// Emails returns every distinct submitter email
func (r *PostgresSubmissionRepository) Emails(ctx context.Context) ([]string, error) {
	sql, args, err := squirrel.Select("DISTINCT email").
		From("submissions").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func insertSubmissionQuery(s *models.Submission) squirrel.InsertBuilder {
	var portfolioName, portfolioURL, redesignName, redesignURL *string
	if s.PortfolioFile != nil {
		portfolioName = helpers.NullIfEmpty(s.PortfolioFile.Name)
		portfolioURL = helpers.NullIfEmpty(s.PortfolioFile.URL)
	}
	if s.RedesignFile != nil {
		redesignName = helpers.NullIfEmpty(s.RedesignFile.Name)
		redesignURL = helpers.NullIfEmpty(s.RedesignFile.URL)
	}

	return squirrel.Insert("submissions").
		Columns(submissionColumns...).
		Values(
			s.ID, s.Name, s.Email, s.Phone, s.LinkedinID, s.PortfolioDescription, s.Category,
			portfolioName, portfolioURL, redesignName, redesignURL,
			s.Status, s.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)
}

func listSubmissionsQuery(offset, limit uint64) squirrel.SelectBuilder {
	return squirrel.Select(submissionColumns...).
		Column("COUNT(*) OVER()").
		From("submissions").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)
}

// fileRef rebuilds a file reference from nullable columns
func fileRef(name, url *string) *models.FileRef {
	if helpers.StringValue(name) == "" && helpers.StringValue(url) == "" {
		return nil
	}
	return &models.FileRef{Name: helpers.StringValue(name), URL: helpers.StringValue(url)}
}
