/*
Copyright © 2026 Thiago Saldanha
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/tsaldanha/fudgeroll/internal/persistence"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <table_name>",
	Short: "Create a new table log",
	Long: `Bootstraps a fresh append-only log.jsonl and a characters
directory under tables/<table_name> to track the history of an
isolated game table.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := persistence.NewTableManager(tablesDir())
		store, err := manager.Create(args[0])
		if err != nil {
			fmt.Printf("Error creating table: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		fmt.Printf("Successfully created table!\n")
		fmt.Printf("Log file stored at: %s\n", manager.GetLogPath(args[0]))
	},
}

func init() {
	tableCmd.AddCommand(createCmd)
}
