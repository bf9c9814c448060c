// Command provision loads a batch of final-round voting tokens from a
// CSV file and replaces the token registry with it. Reward values are
// assigned by row order, top tier first.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kaungzawhein/thadingyut-voting/internal/config"
	"github.com/kaungzawhein/thadingyut-voting/internal/db"
	"github.com/kaungzawhein/thadingyut-voting/internal/logger"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository/dao"
	"github.com/kaungzawhein/thadingyut-voting/internal/service"
)

func main() {
	csvPath := flag.String("csv", "Token350.csv", "path to the token CSV, one token per row in the first column")
	configPath := flag.String("config", "./cmd/app/config.yml", "path to the config file")
	flag.Parse()

	if err := run(*csvPath, *configPath); err != nil {
		log.Fatal(err)
	}
}

func run(csvPath, configPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	rawTokens, err := readTokenCSV(csvPath)
	if err != nil {
		return fmt.Errorf("failed to read tokens -> %w", err)
	}

	ctx := context.Background()
	repo := repository.NewTokenRepository(dao.NewTokenDAO(postgresDB))
	svc := service.NewProvisionService(repo)

	previous, err := repo.CountTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to count existing tokens -> %w", err)
	}

	loaded, err := svc.Provision(ctx, rawTokens)
	if err != nil {
		return fmt.Errorf("failed to provision tokens -> %w", err)
	}

	zap.L().Info("token registry replaced",
		zap.String("csv", csvPath),
		zap.Int64("previous", previous),
		zap.Int("read", len(rawTokens)),
		zap.Int("loaded", loaded))

	return nil
}

// readTokenCSV reads one token per row from the first column. A
// header row named "token" is skipped. Blank rows are ignored.
func readTokenCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var tokens []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read -> %w", err)
		}

		if len(record) == 0 || record[0] == "" {
			continue
		}
		if len(tokens) == 0 && record[0] == "token" {
			continue
		}

		tokens = append(tokens, record[0])
	}

	return tokens, nil
}
