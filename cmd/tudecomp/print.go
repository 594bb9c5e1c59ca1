package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unimod/matrix"
)

type PrintOpts struct {
	in     string
	zero   string
	header bool
}

var printopts = PrintOpts{}

func NewPrintCmd() *cobra.Command {

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "print a dense rendering of a matrix",
		Long:  `Print a matrix as dense rows, optionally with row and column indices`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(printopts.zero) != 1 {
				return fmt.Errorf("zero must be a single character, got %q", printopts.zero)
			}
			zero, _ := utf8.DecodeRuneInString(printopts.zero)
			m, err := loadMatrix(cmd, printopts.in)
			if err != nil {
				return err
			}
			return matrix.Format(cmd.OutOrStdout(), m, zero, printopts.header)
		},
	}

	printCmd.Flags().StringVarP(&printopts.in, "file", "f", stdio, "matrix document to read (- for stdin)")
	printCmd.Flags().StringVar(&printopts.zero, "zero", "0", "character printed for zero entries")
	printCmd.Flags().BoolVar(&printopts.header, "header", false, "print row and column indices")
	return printCmd
}
