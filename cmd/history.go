package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"client-ledger/app"
	"client-ledger/shared"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var (
		clientStr string
		limit     int
		skip      int
	)

	historyCmd := &cobra.Command{
		Use:   "history <file>",
		Short: "Print the journal of one client after applying a CSV file",
		Long: `Applies the operations in the file like the root command does, then prints
the accepted operations of the client given by --client as JSON lines, oldest first.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := shared.ParseClientID(clientStr)
			if err != nil {
				return err
			}

			logger, err := newLogger(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			service, err := loadLedger(cmd.Context(), args[0], opts, logger)
			if err != nil {
				return err
			}

			history, err := service.GetTransactionHistory(app.GetHistoryQuery{ClientID: clientID, Limit: limit, Skip: skip})
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}
			return encodeEvents(cmd.OutOrStdout(), history)
		},
	}

	historyCmd.Flags().StringVar(&clientStr, "client", "", "Client id (required)")
	historyCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of events to print (0 prints all)")
	historyCmd.Flags().IntVar(&skip, "skip", 0, "Number of events to skip")
	_ = historyCmd.MarkFlagRequired("client")
	return historyCmd
}
