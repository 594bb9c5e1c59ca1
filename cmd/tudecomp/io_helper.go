package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unimod/matrix"
)

// stdio is the file name standing for stdin or stdout.
const stdio = "-"

// loadMatrix reads a YAML matrix document from path, or from the command's
// input for "-".
func loadMatrix(cmd *cobra.Command, path string) (*matrix.Sparse[float64], error) {
	var (
		data []byte
		err  error
	)
	if path == stdio {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read matrix %s: %v", path, err)
	}
	m, err := matrix.DecodeYAML[float64](data)
	if err != nil {
		return nil, fmt.Errorf("could not parse matrix %s: %w", path, err)
	}
	return m, nil
}

// writeOutput writes data to path, or to the command's output for "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == stdio {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %v", path, err)
	}
	return nil
}
