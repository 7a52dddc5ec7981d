/*
Copyright © 2026 Thiago Saldanha
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsaldanha/fudgeroll/internal/engine"

	"github.com/spf13/cobra"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll <formula>",
	Short: "Evaluate a dice formula once, optionally steering it to a target",
	Long: `Evaluates a single dice formula and prints the result.

With --target the dice are quietly re-rolled until the total equals
the target. A target outside the formula's reachable range degrades
to one honest roll.

Examples:
  fudgeroll roll 3d6
  fudgeroll roll "2d20kh1 + 5" --target 23
  fudgeroll roll 1d20 --by Wizard --target 17`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		formula := strings.Join(args, " ")
		actor, _ := cmd.Flags().GetString("by")

		f, err := engine.ParseFormula(formula)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		log := buildLogger()
		defer log.Sync()

		seeker := engine.NewSeeker(engine.WithLogger(log))

		var target *int
		if cmd.Flags().Changed("target") {
			t, _ := cmd.Flags().GetInt("target")
			target = &t
		}

		out, err := seeker.Seek(f, engine.Bindings{}, target)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var evt engine.Event
		if out.Seeked {
			evt = &engine.RollSeekedEvent{
				ActorName: actor,
				Formula:   formula,
				Target:    *target,
				Total:     out.Total,
				Attempts:  out.Attempts,
				Dice:      out.Dice,
				Modifier:  out.Modifier,
			}
		} else {
			evt = &engine.DiceRolledEvent{
				ActorName: actor,
				Formula:   formula,
				Total:     out.Total,
				Dice:      out.Dice,
				Modifier:  out.Modifier,
				Maximized: out.Maximized,
			}
		}
		fmt.Println(evt.Message())

		if out.BestEffort {
			fmt.Printf("Could not reach %d after %d attempts, keeping the last roll.\n", *target, out.Attempts)
		}
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().Int("target", 0, "Total the roll should land on")
	rollCmd.Flags().String("by", "System", "Actor name attached to the roll")
}
