package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/realestate-seo-api/infrastructure/database/postgres"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

// pageSource descreve uma tabela do marketplace contada como página publicada
type pageSource struct {
	table    string
	statuses []string
}

var (
	propertiesSource = pageSource{table: "properties", statuses: []string{"active"}}
	listingsSource   = pageSource{table: "listings", statuses: []string{"active"}}
	blogsSource      = pageSource{table: "blogs", statuses: []string{"published"}}
	policiesSource   = pageSource{table: "policies", statuses: []string{"published"}}
)

type PageCountRepository interface {
	CountPages(ctx context.Context) (domain.PageCounts, error)
}

type pageCountRepository struct {
	conn postgres.Conn
}

func NewPageCountRepository(conn postgres.Conn) PageCountRepository {
	return &pageCountRepository{
		conn: conn,
	}
}

func countPagesQuery(source pageSource) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*)").
		From(source.table).
		Where("status = ANY(?)", pq.Array(source.statuses)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *pageCountRepository) CountPages(ctx context.Context) (domain.PageCounts, error) {
	counts := domain.PageCounts{}

	targets := []struct {
		source pageSource
		dest   *int
	}{
		{propertiesSource, &counts.Properties},
		{listingsSource, &counts.Listings},
		{blogsSource, &counts.Blogs},
		{policiesSource, &counts.Policies},
	}

	for _, target := range targets {
		query, args, err := countPagesQuery(target.source).ToSql()
		if err != nil {
			return domain.PageCounts{}, fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := r.conn.QueryRowContext(ctx, query, args...).Scan(target.dest); err != nil {
			return domain.PageCounts{}, fmt.Errorf("erro ao contar páginas de %s: %w", target.source.table, err)
		}
	}

	return counts, nil
}
