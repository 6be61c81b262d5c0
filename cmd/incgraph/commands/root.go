// Package commands wires the incgraph CLI's cobra command tree.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rcannood/incgraph/internal/xlog"
)

var (
	cfgFile     string
	nodesFlag   int
	edgesFile   string
	logLevel    string
	rootCmd     = &cobra.Command{
		Use:   "incgraph",
		Short: "Incremental graphlet orbit-count delta engine",
		Long: `incgraph maintains per-node graphlet orbit counts for an
undirected simple graph and reports the exact set of orbit instances a
single edge toggle would add or remove, without a full recount.`,
	}
)

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.incgraph.yaml)")
	rootCmd.PersistentFlags().IntVar(&nodesFlag, "nodes", 0, "number of nodes (required unless --edges-file implies it)")
	rootCmd.PersistentFlags().StringVar(&edgesFile, "edges-file", "", "CSV file of 1-based i,j edge pairs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(deltaCmd)
	rootCmd.AddCommand(countsCmd)

	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Usage:\n  %s\n\nFlags:\n", cmd.UseLine())
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			fmt.Fprintf(cmd.OutOrStdout(), "  --%-14s %s\n", f.Name, f.Usage)
		})
		return nil
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".incgraph.yaml"))
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func newLogger() *zap.Logger {
	var level zapcore.Level
	if err := level.Set(logLevel); err != nil {
		level = zapcore.InfoLevel
	}
	return xlog.New(level)
}
