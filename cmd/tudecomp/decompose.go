package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/katalvlaran/unimod/onesum"
)

type DecomposeOpts struct {
	in    string
	out   string
	order string
}

var decomposeopts = DecomposeOpts{}

// Report is the YAML document written by the decompose command.
type Report struct {
	Rows       int               `json:"rows"`
	Columns    int               `json:"columns"`
	Components []ComponentReport `json:"components"`
}

// ComponentReport describes one component with its maps to the input.
type ComponentReport struct {
	ID      int         `json:"id"`
	Rows    []int       `json:"rows"`
	Columns []int       `json:"columns"`
	Dense   [][]float64 `json:"dense"`
}

func NewDecomposeCmd() *cobra.Command {

	decomposeCmd := &cobra.Command{
		Use:   "decompose",
		Short: "split a matrix into its one-sum components",
		Long:  `Split a matrix into its one-sum (block-diagonal) components and write a YAML report with every component and its row and column maps`,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parseOrder(decomposeopts.order)
			if err != nil {
				return err
			}
			m, err := loadMatrix(cmd, decomposeopts.in)
			if err != nil {
				return err
			}
			d, err := onesum.Decompose(m, onesum.WithOrder(order), onesum.WithLogger(log.StandardLogger()))
			if err != nil {
				return err
			}
			log.Infof("Decomposed %dx%d matrix into %d components", d.NumRows, d.NumColumns, d.NumComponents())

			report, err := newReport(d)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(report)
			if err != nil {
				return err
			}
			return writeOutput(cmd, decomposeopts.out, data)
		},
	}

	decomposeCmd.Flags().StringVarP(&decomposeopts.in, "file", "f", stdio, "matrix document to read (- for stdin)")
	decomposeCmd.Flags().StringVarP(&decomposeopts.out, "output", "o", stdio, "where to write the report (- for stdout)")
	decomposeCmd.Flags().StringVar(&decomposeopts.order, "order", onesum.OrderDiscovery.String(), "local index order: discovery or original")
	return decomposeCmd
}

func parseOrder(s string) (onesum.Order, error) {
	for _, o := range []onesum.Order{onesum.OrderDiscovery, onesum.OrderOriginal} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown order %q, expected discovery or original", s)
}

func newReport(d *onesum.Decomposition[float64]) (*Report, error) {
	r := &Report{
		Rows:       d.NumRows,
		Columns:    d.NumColumns,
		Components: make([]ComponentReport, 0, d.NumComponents()),
	}
	for _, comp := range d.Components {
		doc, err := matrix.NewDocument(comp.Matrix, true)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", comp.ID, err)
		}
		r.Components = append(r.Components, ComponentReport{
			ID:      comp.ID,
			Rows:    comp.RowsToOriginal,
			Columns: comp.ColumnsToOriginal,
			Dense:   doc.Dense,
		})
	}
	return r, nil
}
