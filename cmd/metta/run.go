package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gokanlogic/internal/replutil"
)

var runCmd = &cobra.Command{
	Use:   "run <file.metta>",
	Short: "load a program and evaluate its top-level directives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("metta run: %w", err)
		}

		s, tok := newSession()
		results, err := loadAndRun(s, tok, logger, string(data))
		if err != nil {
			return fmt.Errorf("metta run: %w", err)
		}
		for _, r := range results {
			fmt.Println(replutil.FormatResults(r))
		}
		return nil
	},
}
