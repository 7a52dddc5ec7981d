/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage table event logs",
	Long: `The table command groups the append-only roll logs by table.

Use subcommands 'create' and 'load' to manipulate the JSONL log
isolated within a specific table's directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("table called")
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
