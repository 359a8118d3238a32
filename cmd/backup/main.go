package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"littlewords/internal/config"
	"littlewords/internal/models"
	"littlewords/internal/repository"
	"littlewords/internal/storage"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	logger := zap.NewNop()
	appRepo := repository.NewAppRepository(store, logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(ctx, appRepo, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(ctx, appRepo, *importInput, *importClear)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(ctx context.Context, appRepo *repository.AppRepository, output string) {
	data := appRepo.Initialize(ctx)

	if output == "" {
		output = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize backup: %v", err)
	}
	if err := os.WriteFile(output, raw, 0o644); err != nil {
		log.Fatalf("Failed to write backup file: %v", err)
	}

	// Remember the backup time in the live blob
	if err := appRepo.MarkBackedUp(ctx, data, time.Now()); err != nil {
		log.Printf("Warning: failed to record backup time: %v", err)
	}

	log.Printf("Exported %d child profile(s) to %s", len(data.Children), output)
}

func handleImport(ctx context.Context, appRepo *repository.AppRepository, input string, clear bool) {
	raw, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("Failed to read backup file: %v", err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse backup file: %v", err)
	}
	if data.Children == nil {
		data.Children = make(map[string]*models.Child)
	}

	if clear {
		if err := appRepo.Reset(ctx); err != nil {
			log.Fatalf("Failed to clear existing data: %v", err)
		}
	}

	if err := appRepo.Save(ctx, &data); err != nil {
		log.Fatalf("Failed to import backup: %v", err)
	}

	log.Printf("Imported %d child profile(s) from %s", len(data.Children), input)
}

func printUsage() {
	fmt.Println("Usage: backup <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  export    Export all data to a JSON backup file")
	fmt.Println("  import    Import data from a JSON backup file")
}
