package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realestate-seo-api/infrastructure/database/postgres"
	"github.com/vfg2006/realestate-seo-api/infrastructure/migration"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/pkg/log"
)

const usage = `uso: migrate [-to versão] <up|status|down>`

func main() {
	target := flag.Int64("to", 0, "versão alvo para down")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	runner, err := migration.New(conn.DB)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar migrações")
	}

	switch command := flag.Arg(0); command {
	case "up":
		err = runner.Up(ctx)
	case "status":
		err = runner.Status(ctx)
	case "down":
		err = runner.Down(ctx, *target)
	default:
		logrus.Errorf("Comando desconhecido: %s", command)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatal("Falha na migração")
	}
}
