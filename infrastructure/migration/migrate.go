// Package migration aplica o schema das tabelas de SEO com goose.
// As tabelas do marketplace (properties, listings, blogs, policies) pertencem
// a outro serviço e não são criadas aqui.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrations embed.FS

// Runner executa as migrações embutidas no binário
type Runner struct {
	db      *sql.DB
	timeout time.Duration
}

func New(db *sql.DB) (Runner, error) {
	if db == nil {
		return Runner{}, errors.New("conexão com o banco não informada")
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(logrus.StandardLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return Runner{}, fmt.Errorf("erro ao configurar goose: %w", err)
	}

	return Runner{db: db, timeout: time.Minute}, nil
}

// Up aplica as migrações pendentes
func (r Runner) Up(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	logrus.Info("Aplicando migrações")
	if err := goose.UpContext(runCtx, r.db, migrationsDir); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, err := goose.GetDBVersionContext(runCtx, r.db)
	if err != nil {
		return fmt.Errorf("erro ao obter versão do schema: %w", err)
	}

	logrus.WithField("version", version).Info("Migrações aplicadas com sucesso")
	return nil
}

// Status imprime as migrações aplicadas e pendentes
func (r Runner) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, r.db, migrationsDir); err != nil {
		return fmt.Errorf("erro ao consultar status das migrações: %w", err)
	}
	return nil
}

// Down desfaz a última migração, ou todas acima de targetVersion quando informado
func (r Runner) Down(ctx context.Context, targetVersion int64) error {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if targetVersion > 0 {
		logrus.WithField("target", targetVersion).Info("Revertendo migrações")
		if err := goose.DownToContext(runCtx, r.db, migrationsDir, targetVersion); err != nil {
			return fmt.Errorf("erro ao reverter até a versão %d: %w", targetVersion, err)
		}
		return nil
	}

	logrus.Info("Revertendo a última migração")
	if err := goose.DownContext(runCtx, r.db, migrationsDir); err != nil {
		return fmt.Errorf("erro ao reverter a última migração: %w", err)
	}
	return nil
}
