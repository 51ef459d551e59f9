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
	monitoringTable = "seo_monitoring sm"
)

var monitoringColumns = []string{
	"sm.id",
	"sm.timestamp",
	"sm.url",
	"sm.page_speed_desktop",
	"sm.page_speed_mobile",
	"sm.lcp",
	"sm.fid",
	"sm.cls",
	"sm.fcp",
	"sm.ttfb",
	"sm.mobile_usability_score",
	"sm.domain_authority",
}

type MonitoringRepository interface {
	ListByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.MonitoringSnapshot, error)
	Save(ctx context.Context, snapshot *domain.MonitoringSnapshot) error
}

type monitoringRepository struct {
	conn postgres.Conn
}

func NewMonitoringRepository(conn postgres.Conn) MonitoringRepository {
	return &monitoringRepository{
		conn: conn,
	}
}

func listMonitoringQuery(startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(monitoringColumns...).
		From(monitoringTable).
		Where(squirrel.GtOrEq{"sm.timestamp": startDate}).
		Where(squirrel.LtOrEq{"sm.timestamp": endDate}).
		OrderBy("sm.timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *monitoringRepository) ListByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.MonitoringSnapshot, error) {
	query, args, err := listMonitoringQuery(startDate, endDate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.MonitoringSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de monitoramento: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func saveMonitoringQuery(s *domain.MonitoringSnapshot) squirrel.InsertBuilder {
	return squirrel.
		Insert("seo_monitoring").
		Columns(
			"timestamp",
			"url",
			"page_speed_desktop",
			"page_speed_mobile",
			"lcp",
			"fid",
			"cls",
			"fcp",
			"ttfb",
			"mobile_usability_score",
			"domain_authority",
		).
		Values(
			s.Timestamp,
			s.URL,
			s.PageSpeedDesktop,
			s.PageSpeedMobile,
			s.LCP,
			s.FID,
			s.CLS,
			s.FCP,
			s.TTFB,
			s.MobileUsabilityScore,
			s.DomainAuthority,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *monitoringRepository) Save(ctx context.Context, snapshot *domain.MonitoringSnapshot) error {
	query, args, err := saveMonitoringQuery(snapshot).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&snapshot.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *monitoringRepository) scanSnapshot(rows *sql.Rows) (domain.MonitoringSnapshot, error) {
	in := domain.MonitoringSnapshotInput{}

	err := rows.Scan(
		&in.ID,
		&in.Timestamp,
		&in.URL,
		&in.PageSpeedDesktop,
		&in.PageSpeedMobile,
		&in.LCP,
		&in.FID,
		&in.CLS,
		&in.FCP,
		&in.TTFB,
		&in.MobileUsabilityScore,
		&in.DomainAuthority,
	)
	if err != nil {
		return domain.MonitoringSnapshot{}, err
	}

	return in.Coerce(), nil
}
