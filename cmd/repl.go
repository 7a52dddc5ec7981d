/*
Copyright © 2026 Thiago Saldanha
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/tsaldanha/fudgeroll/internal/persistence"
	"github.com/tsaldanha/fudgeroll/internal/session"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl <table_name>",
	Short: "Start the interactive REPL shell",
	Long: `Starts the read-eval-print loop for a table. Rolls issued here are
appended to the table's event log.
Usage:
	> roll by: Wizard 1d20+5 target: 17`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tableName := args[0]

		manager := persistence.NewTableManager(tablesDir())
		store, err := manager.Load(tableName)
		if err != nil {
			fmt.Printf("Error finding table: %v (run 'fudgeroll table create %s' first)\n", err, tableName)
			os.Exit(1)
		}

		log := buildLogger()
		defer log.Sync()

		// Sheets resolve against the table first, then the shared data dir.
		dataDirs := []string{manager.GetTablePath(tableName), dataDir()}

		app, err := session.NewSession(dataDirs, store, log)
		if err != nil {
			fmt.Printf("Failed to bootstrap session: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		defer app.Close()

		fmt.Printf("Starting REPL for table '%s'...\nType 'exit' or 'quit' to leave.\n\n", tableName)

		if err := RunTUI(app, tableName); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
