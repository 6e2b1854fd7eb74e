/*
Package main provides the command line tool to benchmark, check and inspect
the red-black tree. Usage:

	rbtree bench --size 100000 --rounds 64
	rbtree check --ops 20000
	rbtree sort keys.txt
	rbtree dump --format text keys.txt
*/
package main

import (
	"fmt"
	"os"

	"github.com/cyraxred/rbtree"
	"github.com/cyraxred/rbtree/internal/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rbtree",
	Short: "Exercise the red-black tree.",
	Long: `rbtree builds red-black trees of int32 keys. It measures insertion and erasure
throughput, runs randomized invariant checks, sorts integers and renders trees.`,
	SilenceUsage: true,
}

// versionCmd prints the API version and the Git commit hash
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information and exit.",
	Long:  ``,
	Args:  cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %d\nGit:     %s\n",
			rbtree.BinaryVersion, rbtree.BinaryGitHash)
	},
}

// cliLogger logs through the logger chosen by the global flags.
// Info records are dropped unless --verbose is set.
type cliLogger struct {
	core.Logger
	verbose bool
}

func (l cliLogger) Info(v ...interface{}) {
	if l.verbose {
		l.Logger.Info(v...)
	}
}

func (l cliLogger) Infof(f string, v ...interface{}) {
	if l.verbose {
		l.Logger.Infof(f, v...)
	}
}

func newLogger(flags *pflag.FlagSet) core.Logger {
	jsonLog, err := flags.GetBool("json-log")
	if err != nil {
		panic(err)
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		panic(err)
	}
	var backend core.Logger
	if jsonLog {
		backend = core.NewLogrusLogger(os.Stderr, true)
	} else {
		backend = core.NewLogger()
	}
	return cliLogger{Logger: backend, verbose: verbose}
}

func init() {
	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.Bool("json-log", false, "Write the log records as JSON through logrus.")
	persistentFlags.Bool("verbose", false, "Log the progress messages.")
	rootCmd.AddCommand(benchCmd, checkCmd, sortCmd, dumpCmd, versionCmd)
	versionCmd.SetUsageFunc(versionCmd.UsageFunc())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
