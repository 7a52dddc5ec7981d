package cmd

import (
	"fmt"
	"os"

	"github.com/tsaldanha/fudgeroll/internal/srd"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize skill data by downloading SRD files from dnd5eapi",
	Long: `Bootstraps the local data directory by fetching the 5e SRD skill
list and writing the skill-to-ability mapping as skills.yaml, so
check commands can resolve skills offline.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("data_dir_local")
		if dir == "" {
			dir = dataDir()
		}

		force, _ := cmd.Flags().GetBool("force")

		fmt.Printf("Initializing SRD data to: %s\n", dir)

		client := srd.NewClient(dir, force)

		// The SRD ships 18 skills.
		bar := progressbar.Default(18, "Downloading skills")

		skills, err := client.FetchSkills(func(name string) {
			bar.Add(1)
		})
		if err != nil {
			fmt.Printf("Error fetching skills: %v\n", err)
			os.Exit(1)
		}

		path, err := client.SaveSkills(skills)
		if err != nil {
			fmt.Printf("Error saving skills: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\nWrote %d skills to %s\n", len(skills), path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Force redownload of existing files")
	initCmd.Flags().String("data_dir_local", "", "Local data directory to save files to (defaults to the configured data_dir)")
}
