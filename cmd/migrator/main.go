package main

import (
	"database/sql"
	"flag"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/triviaforge/trivia-api/internal/config"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, or status")
		dir     = flag.String("dir", "db/migrations", "Directory containing migration files")
	)
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	migrationDir, err := filepath.Abs(*dir)
	if err != nil {
		log.WithError(err).WithField("dir", *dir).Fatal("Failed to resolve migration directory")
	}
	if _, err := os.Stat(migrationDir); os.IsNotExist(err) {
		log.WithField("dir", migrationDir).Fatal("Migration directory does not exist")
	}

	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		log.WithError(err).Fatal("Failed to open database connection")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("Failed to ping database")
	}

	log.WithFields(logrus.Fields{
		"database":      cfg.Postgres.Database,
		"migration_dir": migrationDir,
	}).Info("Connected to database")

	switch *command {
	case "up":
		if err := goose.Up(db, migrationDir); err != nil {
			log.WithError(err).Fatal("Failed to run migrations up")
		}
		log.Info("Migrations applied")

	case "down":
		if err := goose.Down(db, migrationDir); err != nil {
			log.WithError(err).Fatal("Failed to roll back migration")
		}
		log.Info("Migration rolled back")

	case "status":
		if err := goose.Status(db, migrationDir); err != nil {
			log.WithError(err).Fatal("Failed to get migration status")
		}

	default:
		log.WithField("command", *command).Fatal("Unknown command. Use: up, down, or status")
	}
}
