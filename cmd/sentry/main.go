// Gray Logic Sentry - Security Automation Rules Core
//
// This is the main entry point for the Sentry dry-run tool. Sentry manages
// when/then security rules (conditions, actions, day-of-week schedules) and
// lets a user simulate a rule against a saved test scenario before the rule
// is committed to the live execution engine.
//
// Sentry never performs real-world side effects: it decides whether a rule
// would fire and prints the verdict. Arming panels and switching lights is
// the live engine's job.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/nerrad567/gray-logic-sentry/migrations"

	"github.com/nerrad567/gray-logic-sentry/internal/entity"
	"github.com/nerrad567/gray-logic-sentry/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-sentry/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-sentry/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-sentry/internal/rule"
	"github.com/nerrad567/gray-logic-sentry/internal/scenario"
	"github.com/nerrad567/gray-logic-sentry/internal/storage"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Without flags it opens the store and reports how many scenarios are
// saved. With -rule and -scenario it dry-runs the rule document in the
// given file against the named saved scenario.
func run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("sentry", flag.ContinueOnError)
	rulePath := flags.String("rule", "", "path to a rule document JSON file to dry-run")
	scenarioName := flags.String("scenario", "", "name of the saved scenario to dry-run against")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Gray Logic Sentry", "version", version, "commit", commit)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded", "path", configPath)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database ready", "path", cfg.Database.Path)

	// Wire the scenario store to its blob key
	store, err := scenario.NewStore(scenario.StoreConfig{
		Key:   cfg.Storage.ScenariosKey,
		Blobs: storage.NewSQLite(db.DB),
	})
	if err != nil {
		return fmt.Errorf("creating scenario store: %w", err)
	}
	store.SetLogger(log.With("component", "scenario"))

	scenarios, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading scenarios: %w", err)
	}
	log.Info("scenarios loaded", "count", len(scenarios))

	if *rulePath == "" {
		return nil
	}

	return dryRun(log, scenarios, *rulePath, *scenarioName)
}

// dryRun evaluates the rule document in rulePath against the named
// scenario and prints the verdict to stdout.
func dryRun(log *logging.Logger, scenarios []scenario.Scenario, rulePath, scenarioName string) error {
	data, err := os.ReadFile(rulePath)
	if err != nil {
		return fmt.Errorf("reading rule document: %w", err)
	}
	doc, err := rule.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding rule document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		log.Warn("rule document has validation problems", "error", err)
	}

	sc, ok := scenario.Find(scenarios, scenarioName)
	if !ok {
		return fmt.Errorf("scenario %q is not saved", scenarioName)
	}

	// Flag entities the rule touches that the scenario never asserts, so
	// a "does not fire" verdict caused by a typo is easy to spot.
	asserted := make([]string, 0, len(sc.Rows))
	for _, row := range sc.Rows {
		asserted = append(asserted, row.EntityID)
	}
	if unknown := entity.UnknownEntities(entity.NewSnapshot(asserted), doc); len(unknown) > 0 {
		log.Warn("rule references entities the scenario does not assert", "entities", unknown)
	}

	result := scenario.Evaluate(doc, sc, time.Now())
	log.Info("dry run complete",
		"rule", doc.Name,
		"scenario", sc.Name,
		"fires", result.Fires,
	)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// getConfigPath returns the configuration file path from the environment
// or the default location.
func getConfigPath() string {
	if path := os.Getenv("SENTRY_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
