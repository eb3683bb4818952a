package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gokanlogic/internal/replutil"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "read-eval-print loop over a shared atomspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, tok := newSession()
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("metta> ")
		for scanner.Scan() {
			line := scanner.Text()
			results, err := loadAndRun(s, tok, logger, line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else if replutil.IsDirective(line) {
				for _, r := range results {
					fmt.Println(replutil.FormatResults(r))
				}
			}
			fmt.Print("metta> ")
		}
		fmt.Println()
		return scanner.Err()
	},
}
