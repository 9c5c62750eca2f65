package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"client-ledger/app"
	"client-ledger/config"
	"client-ledger/csvio"
	"client-ledger/events"
	"client-ledger/store"
)

// options holds flag values shared by every command.
type options struct {
	logLevel        string
	logFormat       string
	continueOnError bool
	journalPath     string
}

// Execute builds the command tree from the environment configuration and runs it.
// This is called by main.main().
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd returns the ledger-cli command. Flag defaults come from cfg.
func NewRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ledger-cli <file>",
		Short: "Apply a CSV of client transactions and print the resulting accounts",
		Long: `ledger-cli reads deposits, withdrawals, disputes, resolves and chargebacks
from a CSV file with the columns type,client,tx,amount, applies them in order,
and prints one row per client: client,available,held,total,locked.

By default processing stops at the first rejected operation and nothing is
printed; use --continue-on-error to skip rejected operations instead.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args[0], opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", cfg.LogFormat, "Log format (json or console)")
	flags.BoolVar(&opts.continueOnError, "continue-on-error", cfg.ContinueOnError, "Skip rejected operations instead of stopping")
	flags.StringVar(&opts.journalPath, "journal", cfg.JournalPath, "Write the journal of accepted operations to this file as JSON lines")

	rootCmd.AddCommand(newHistoryCmd(opts))
	return rootCmd
}

func runProcess(cmd *cobra.Command, path string, opts *options) error {
	logger, err := newLogger(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	service, err := loadLedger(cmd.Context(), path, opts, logger)
	if err != nil {
		return err
	}

	writer, err := csvio.NewWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	for _, snap := range service.Accounts() {
		if err := writer.Write(snap); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// loadLedger applies every operation in the file at path to a fresh ledger.
func loadLedger(ctx context.Context, path string, opts *options, logger *zap.Logger) (*app.LedgerService, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	runID := uuid.New()
	logger = logger.With(zap.String("run", runID.String()), zap.String("file", path))
	logger.Info("processing started")

	eventStore := store.NewInMemoryEventStore()
	service, err := app.NewLedgerService(eventStore, logger)
	if err != nil {
		return nil, err
	}

	reader := csvio.NewReader(file)
	ops, err := reader.Operations()
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	_, err = service.Process(ctx, ops, app.ProcessCommand{StopOnError: !opts.continueOnError})
	if err != nil {
		return nil, fmt.Errorf("error processing operation: %w", err)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if opts.journalPath != "" {
		if err := writeJournal(opts.journalPath, eventStore); err != nil {
			return nil, err
		}
		logger.Info("journal written", zap.String("path", opts.journalPath))
	}
	return service, nil
}

func writeJournal(path string, es store.EventStore) error {
	all, err := es.AllEvents()
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create journal %s: %w", path, err)
	}
	if err := encodeEvents(file, all); err != nil {
		file.Close()
		return fmt.Errorf("failed to write journal %s: %w", path, err)
	}
	return file.Close()
}

func encodeEvents(w io.Writer, evs []events.Event) error {
	enc := json.NewEncoder(w)
	for _, e := range evs {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
