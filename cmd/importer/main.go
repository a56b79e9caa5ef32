// Command importer loads postings from a CSV export into the database.
// Expected columns: institute,title,skills,deadline,link,email,date_added.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"intern_scout/internal/config"
	"intern_scout/internal/domain"
	"intern_scout/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "", "path to CSV file")
	flag.Parse()

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))

	if *filePath == "" {
		logger.Error("missing -file flag")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Error("failed to open file", "path", *filePath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	store := postgres.NewPostingStore(db)
	created, duplicates, skipped, err := importCSV(context.Background(), f, store, logger)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	logger.Info("import finished",
		"created", created,
		"duplicates", duplicates,
		"skipped", skipped,
	)
}

// importCSV inserts every row through the insert-or-ignore contract. Rows
// with too few columns or an empty link are skipped, never fatal.
func importCSV(ctx context.Context, r io.Reader, store *postgres.PostingStore, logger *slog.Logger) (created, duplicates, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header := true
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			return created, duplicates, skipped, nil
		}
		if readErr != nil {
			return created, duplicates, skipped, readErr
		}
		if header {
			header = false
			continue
		}
		if len(record) < 5 || strings.TrimSpace(record[4]) == "" {
			skipped++
			continue
		}

		posting := rowToPosting(record)
		ok, insertErr := store.Insert(ctx, &posting)
		if insertErr != nil {
			return created, duplicates, skipped, insertErr
		}
		if ok {
			created++
		} else {
			duplicates++
		}
		logger.Debug("imported row", "link", posting.Link, "created", ok)
	}
}

func rowToPosting(record []string) domain.Posting {
	posting := domain.Posting{
		InstituteCode: strings.TrimSpace(record[0]),
		Title:         strings.TrimSpace(record[1]),
		Skills:        strings.TrimSpace(record[2]),
		Link:          strings.TrimSpace(record[4]),
		PostedOn:      time.Now(),
	}

	if deadline := strings.TrimSpace(record[3]); deadline != "" {
		posting.Deadline = &deadline
	}
	if len(record) > 5 {
		if email := strings.TrimSpace(record[5]); email != "" {
			posting.Email = &email
		}
	}
	if len(record) > 6 {
		if posted, parseErr := dateparse.ParseAny(strings.TrimSpace(record[6])); parseErr == nil {
			posting.PostedOn = posted
		}
	}
	return posting
}
