package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/unimod/matrix"
)

type TransposeOpts struct {
	in    string
	out   string
	dense bool
}

var transposeopts = TransposeOpts{}

func NewTransposeCmd() *cobra.Command {

	transposeCmd := &cobra.Command{
		Use:   "transpose",
		Short: "write the transpose of a matrix",
		Long:  `Write the transpose of a matrix document as a new matrix document`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(cmd, transposeopts.in)
			if err != nil {
				return err
			}
			mt, err := matrix.Transpose(m)
			if err != nil {
				return err
			}
			data, err := matrix.EncodeYAML(mt, transposeopts.dense)
			if err != nil {
				return err
			}
			return writeOutput(cmd, transposeopts.out, data)
		},
	}

	transposeCmd.Flags().StringVarP(&transposeopts.in, "file", "f", stdio, "matrix document to read (- for stdin)")
	transposeCmd.Flags().StringVarP(&transposeopts.out, "output", "o", stdio, "where to write the transpose (- for stdout)")
	transposeCmd.Flags().BoolVar(&transposeopts.dense, "dense", false, "write a dense body instead of entries")
	return transposeCmd
}
