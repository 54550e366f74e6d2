package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/vitalgen/internal/config"
	"github.com/Rana718/vitalgen/internal/corpus"
)

const corpusFile = "corpus.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and an editable corpus",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(config.FileName); err != nil {
			return err
		}
		color.Green("✅ Created %s", config.FileName)

		if _, err := os.Stat(corpusFile); err == nil {
			color.Yellow("⚠️  %s already exists, leaving it untouched", corpusFile)
		} else {
			if err := os.WriteFile(corpusFile, corpus.DefaultBytes(), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", corpusFile, err)
			}
			color.Green("✅ Created %s", corpusFile)
		}

		fmt.Println()
		color.Cyan("💡 Set \"corpus_path\": %q in %s to use the edited corpus", corpusFile, config.FileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
