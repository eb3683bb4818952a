// Command metta runs and interactively evaluates MeTTa-family programs
// against the meta-circular interpreter of pkg/interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/gokanlogic/internal/logging"
)

var (
	logLevel string
	trace    bool
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "metta",
	Short: "metta runs programs against the homoiconic term-rewriting engine",
	Long: `metta loads a MeTTa-family program into an atomspace and reduces its
top-level "!expr" directives to a fixpoint via the meta-circular interpreter
(interpret/interpret-tuple/interpret-func/call/switch/type-cast/...).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if trace {
			level = "debug"
		}
		logger, logCleanup = logging.New(level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
		}
	},
}

var logCleanup func()

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace every interpreter rewrite step (shorthand for --log-level=debug)")
	rootCmd.AddCommand(runCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
