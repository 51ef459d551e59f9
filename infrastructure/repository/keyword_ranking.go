package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/realestate-seo-api/infrastructure/database/postgres"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

const (
	keywordRankingsTable = "keyword_rankings kr"
)

type KeywordRankingRepository interface {
	ListByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.KeywordRanking, error)
	SaveOrUpdate(ctx context.Context, rankings []domain.KeywordRanking) error
}

type keywordRankingRepository struct {
	conn postgres.Conn
}

func NewKeywordRankingRepository(conn postgres.Conn) KeywordRankingRepository {
	return &keywordRankingRepository{
		conn: conn,
	}
}

func listKeywordRankingsQuery(startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("kr.id", "kr.keyword", "kr.position", "kr.search_volume", "kr.date", "kr.url").
		From(keywordRankingsTable).
		Where(squirrel.GtOrEq{"kr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"kr.date": endDate.Format(time.DateOnly)}).
		OrderBy("kr.date DESC", "kr.keyword ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *keywordRankingRepository) ListByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.KeywordRanking, error) {
	query, args, err := listKeywordRankingsQuery(startDate, endDate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.KeywordRanking, 0)
	for rows.Next() {
		ranking, err := r.scanRanking(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking de palavra-chave: %w", err)
		}
		rankings = append(rankings, ranking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}

func saveKeywordRankingsQuery(rankings []domain.KeywordRanking) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert("keyword_rankings").
		Columns("keyword", "position", "search_volume", "url", "date").
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.Keyword,
			ranking.Position,
			ranking.SearchVolume,
			ranking.URL,
			ranking.Date.Format(time.DateOnly),
		)
	}

	return query.Suffix(`
		ON CONFLICT (keyword, url, date) DO UPDATE SET
			position = EXCLUDED.position,
			search_volume = EXCLUDED.search_volume,
			updated_at = CURRENT_TIMESTAMP
	`)
}

// SaveOrUpdate grava as observações em lote; a mesma palavra-chave, URL e data é sobrescrita
func (r *keywordRankingRepository) SaveOrUpdate(ctx context.Context, rankings []domain.KeywordRanking) error {
	if len(rankings) == 0 {
		return nil
	}

	query, args, err := saveKeywordRankingsQuery(rankings).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *keywordRankingRepository) scanRanking(rows *sql.Rows) (domain.KeywordRanking, error) {
	in := domain.KeywordRankingInput{}

	err := rows.Scan(
		&in.ID,
		&in.Keyword,
		&in.Position,
		&in.SearchVolume,
		&in.Date,
		&in.URL,
	)
	if err != nil {
		return domain.KeywordRanking{}, err
	}

	return in.Coerce(), nil
}
