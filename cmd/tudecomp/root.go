package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type RootOpts struct {
	logLevel string
}

var rootopts = RootOpts{}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tudecomp",
		Short: "tudecomp inspects and decomposes sparse ternary matrices",
		Long:  `The tool reads YAML matrix documents, checks their value domain and splits them into one-sum (block-diagonal) components`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(rootopts.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", "info", "log level (trace, debug, info, warning, error)")

	rootCmd.AddCommand(NewDecomposeCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewTransposeCmd())
	rootCmd.AddCommand(NewPrintCmd())
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
