package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"leadcrm/internal/config"
	"leadcrm/internal/database"
	"leadcrm/internal/domain/campaign"
	"leadcrm/internal/domain/invoice"
	"leadcrm/internal/domain/lead"
	"leadcrm/internal/domain/user"
	"leadcrm/internal/importer"
)

func main() {
	file := flag.String("file", "", "CSV sheet to import")
	continueOnError := flag.Bool("continue-on-error", false, "record unresolvable assignees as row failures instead of aborting")
	flag.Parse()

	if *file == "" {
		log.Fatal("usage: import -file leads.csv [-continue-on-error]")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&lead.Lead{},
		&campaign.Campaign{},
		&invoice.Invoice{},
	); err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	imp := importer.New(lead.NewRepository(db), user.NewRepository(db), logger, importer.Options{
		PlaceholderEmailDomain: cfg.PlaceholderEmailDomain,
		ContinueOnError:        *continueOnError,
		MaxRows:                cfg.ImportMaxRows,
	})

	report, err := imp.RunReader(context.Background(), f)
	if err != nil {
		var aerr *importer.AssigneeNotFoundError
		if errors.As(err, &aerr) && report != nil {
			fmt.Printf("import aborted: %v\n", aerr)
			printReport(report)
			os.Exit(1)
		}
		log.Fatal(err)
	}

	printReport(report)
}

func printReport(r *importer.Report) {
	fmt.Printf("run %s: %d rows, %d accepted, %d skipped (duplicates), %d failed\n",
		r.RunID, r.Total, r.Accepted, r.Skipped, len(r.Failed))
	for _, f := range r.Failed {
		fmt.Printf("  %s\n", f.Reason)
	}
}
