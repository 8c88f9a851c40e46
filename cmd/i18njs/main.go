package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"i18njs/internal/adapters/cli"
	"i18njs/internal/application"
	"i18njs/internal/config"
	"i18njs/internal/infrastructure/configfile"
	"i18njs/internal/infrastructure/database"
	"i18njs/internal/infrastructure/i18n"
	"i18njs/internal/infrastructure/jsfile"
	"i18njs/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	command := kingpin.MustParse(cli.NewApp(cfg).Parse(os.Args[1:]))

	if command == cli.CmdMigrate {
		if cfg.DatabaseURL == "" {
			log.Fatal("❌ DATABASE_URL is required for migrate")
		}
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("❌ %v", err)
		}
		return
	}

	ctx := context.Background()
	var sources []output.TranslationSource
	if _, err := os.Stat(cfg.LocalesDir); errors.Is(err, fs.ErrNotExist) {
		log.Printf("i18n-js: no message files, %s does not exist", cfg.LocalesDir)
	} else {
		sources = append(sources, i18n.NewMessageSource(os.DirFS(cfg.LocalesDir), cfg.DefaultLocale))
	}

	if cfg.DatabaseURL != "" {
		if cfg.Migrate {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				log.Fatalf("❌ %v", err)
			}
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ PostgreSQL: %v", err)
		}
		defer pool.Close()
		sources = append(sources, database.NewTranslationSource(pool))
	}

	locales, err := i18n.NewStaticLocales(cfg.AvailableLocales)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	svc := application.NewExportService(
		configfile.NewLoader(cfg.ConfigFile),
		application.NewCollector(sources...),
		application.NewResolver(cfg.ExportDir),
		locales,
		jsfile.NewSink(),
	)
	if err := cli.NewHandler(svc, os.Stdout).Run(ctx, command); err != nil {
		log.Printf("❌ %s: %v", command, err)
		os.Exit(1)
	}
}
