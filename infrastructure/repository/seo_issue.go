package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/realestate-seo-api/infrastructure/database/postgres"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

const (
	seoIssuesTable = "seo_issues si"
)

type SEOIssueRepository interface {
	ListOpen(ctx context.Context) ([]domain.SEOIssue, error)
}

type seoIssueRepository struct {
	conn postgres.Conn
}

func NewSEOIssueRepository(conn postgres.Conn) SEOIssueRepository {
	return &seoIssueRepository{
		conn: conn,
	}
}

func listOpenIssuesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("si.id", "si.type", "si.message", "si.url", "si.priority", "si.status", "si.created_at").
		From(seoIssuesTable).
		Where(squirrel.Eq{"si.status": domain.IssueStatusOpen}).
		OrderBy(
			"CASE si.priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END",
			"si.created_at DESC",
		).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *seoIssueRepository) ListOpen(ctx context.Context) ([]domain.SEOIssue, error) {
	query, args, err := listOpenIssuesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.SEOIssue{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	issues := make([]domain.SEOIssue, 0)
	for rows.Next() {
		issue := domain.SEOIssue{}
		if err := rows.Scan(
			&issue.ID,
			&issue.Type,
			&issue.Message,
			&issue.URL,
			&issue.Priority,
			&issue.Status,
			&issue.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear problema de SEO: %w", err)
		}
		issues = append(issues, issue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return issues, nil
}
