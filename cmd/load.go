/*
Copyright © 2026 Thiago Saldanha
*/
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/tsaldanha/fudgeroll/internal/engine"
	"github.com/tsaldanha/fudgeroll/internal/persistence"

	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load <table_name>",
	Short: "Load a table and print the current roll tallies",
	Long: `Reads the log.jsonl of a specific table and folds the events
into the per-actor roll statistics.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager := persistence.NewTableManager(tablesDir())
		store, err := manager.Load(args[0])
		if err != nil {
			fmt.Printf("Error finding table: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		events, err := store.Load()
		if err != nil {
			fmt.Printf("Error reading event log: %v\n", err)
			os.Exit(1)
		}

		projector := engine.NewProjector()
		state, err := projector.Build(events)
		if err != nil {
			fmt.Printf("Error building state: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Successfully loaded table!\n")
		fmt.Printf("Processed %d events.\n", len(events))
		fmt.Printf("Actors seen: %d\n", len(state.Actors))

		names := make([]string, 0, len(state.Actors))
		for name := range state.Actors {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			a := state.Actors[name]
			fmt.Printf("- %s: %d rolls (%d honest, %d steered), last total %d\n",
				name, a.Rolls, a.Honest, a.Seeked, a.LastTotal)
		}
	},
}

func init() {
	tableCmd.AddCommand(loadCmd)
}
