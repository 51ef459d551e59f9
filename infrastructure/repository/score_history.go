package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/realestate-seo-api/infrastructure/database/postgres"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	scoreHistoryTable = "seo_score_history sh"
)

type ScoreHistoryRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.ScoreSnapshot, keepDays int) error
	ListSince(ctx context.Context, since time.Time) ([]domain.ScoreSnapshot, error)
}

type scoreHistoryRepository struct {
	conn postgres.Conn
}

func NewScoreHistoryRepository(conn postgres.Conn) ScoreHistoryRepository {
	return &scoreHistoryRepository{
		conn: conn,
	}
}

func upsertScoreQuery(snapshot *domain.ScoreSnapshot, breakdown []byte) squirrel.InsertBuilder {
	return squirrel.
		Insert("seo_score_history").
		Columns("id", "date", "period", "score", "grade", "breakdown").
		Values(
			snapshot.ID,
			snapshot.Date.Format(time.DateOnly),
			string(snapshot.Period),
			snapshot.Score,
			snapshot.Grade,
			string(breakdown),
		).
		Suffix(`
			ON CONFLICT (date, period) DO UPDATE SET
				score = EXCLUDED.score,
				grade = EXCLUDED.grade,
				breakdown = EXCLUDED.breakdown,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func pruneScoresQuery(before time.Time) squirrel.DeleteBuilder {
	return squirrel.
		Delete("seo_score_history").
		Where(squirrel.Lt{"date": before.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar)
}

// SaveOrUpdate grava o score do dia e, na mesma transação, remove os registros
// mais antigos que keepDays. keepDays <= 0 mantém todo o histórico.
func (r *scoreHistoryRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.ScoreSnapshot, keepDays int) error {
	breakdown, err := json.Marshal(snapshot.Breakdown)
	if err != nil {
		return fmt.Errorf("erro ao serializar breakdown: %w", err)
	}

	query, args, err := upsertScoreQuery(snapshot, breakdown).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, args...).Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.UpdatedAt)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		if keepDays <= 0 {
			return nil
		}

		pruneQuery, pruneArgs, err := pruneScoresQuery(snapshot.Date.AddDate(0, 0, -keepDays)).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, pruneQuery, pruneArgs...); err != nil {
			return fmt.Errorf("erro ao remover histórico antigo: %w", err)
		}

		return nil
	})
}

func listScoresQuery(since time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("sh.id", "sh.date", "sh.period", "sh.score", "sh.grade", "sh.breakdown", "sh.created_at", "sh.updated_at").
		From(scoreHistoryTable).
		Where(squirrel.GtOrEq{"sh.date": since.Format(time.DateOnly)}).
		OrderBy("sh.date ASC", "sh.period ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *scoreHistoryRepository) ListSince(ctx context.Context, since time.Time) ([]domain.ScoreSnapshot, error) {
	query, args, err := listScoresQuery(since).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.ScoreSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de score: %w", err)
		}
		snapshots = append(snapshots, *snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *scoreHistoryRepository) scanScore(rows *sql.Rows) (*domain.ScoreSnapshot, error) {
	snapshot := &domain.ScoreSnapshot{}
	var period string
	var breakdown []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.Date,
		&period,
		&snapshot.Score,
		&snapshot.Grade,
		&breakdown,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Period = domain.Period(period)

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &snapshot.Breakdown); err != nil {
			return nil, fmt.Errorf("erro ao deserializar breakdown: %w", err)
		}
	}

	return snapshot, nil
}
