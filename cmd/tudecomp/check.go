package main

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/unimod/matrix"
)

type CheckOpts struct {
	in      string
	domain  string
	epsilon float64
}

var checkopts = CheckOpts{}

var errOutsideDomain = errors.New("matrix is outside the requested domain")

func NewCheckCmd() *cobra.Command {

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "check that every entry is binary or ternary",
		Long:  `Check that every entry of a matrix lies in {0,1} (binary) or {-1,0,1} (ternary) and report the first entry that does not`,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := parseDomain(checkopts.domain)
			if err != nil {
				return err
			}
			if checkopts.epsilon < 0 || math.IsNaN(checkopts.epsilon) || math.IsInf(checkopts.epsilon, 0) {
				return fmt.Errorf("epsilon must be a finite non-negative number, got %g", checkopts.epsilon)
			}
			m, err := loadMatrix(cmd, checkopts.in)
			if err != nil {
				return err
			}
			ok, sub, err := matrix.CheckDomain(m, domain, matrix.WithEpsilon(checkopts.epsilon))
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			}
			row, col := sub.Rows[0], sub.Columns[0]
			value, _, err := m.At(row, col)
			if err != nil {
				return err
			}
			log.Debugf("Entry (%d,%d) violates the %s domain", row, col, domain)
			fmt.Fprintf(cmd.OutOrStdout(), "entry (%d,%d)=%g is not %s\n", row, col, value, domain)
			return errOutsideDomain
		},
	}

	checkCmd.Flags().StringVarP(&checkopts.in, "file", "f", stdio, "matrix document to read (- for stdin)")
	checkCmd.Flags().StringVar(&checkopts.domain, "domain", matrix.DomainTernary.String(), "value domain: binary or ternary")
	checkCmd.Flags().Float64Var(&checkopts.epsilon, "epsilon", matrix.DefaultEpsilon, "tolerance for non-integral values")
	return checkCmd
}

func parseDomain(s string) (matrix.Domain, error) {
	for _, d := range []matrix.Domain{matrix.DomainBinary, matrix.DomainTernary} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown domain %q, expected binary or ternary", s)
}
