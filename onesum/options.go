package onesum

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Option configures optional behavior and outputs of Decompose.
type Option func(*Options)

// Options holds the effective configuration of one decomposition call.
type Options struct {
	// Logger receives phase summaries at debug level.
	// Defaults to logrus.StandardLogger().
	Logger logrus.FieldLogger

	// Order selects local index assignment. Default OrderDiscovery.
	Order Order

	// Optional full-universe outputs; nil means "not requested".
	RowsToComponents          []int
	ColumnsToComponents       []int
	RowsToComponentRows       []int
	ColumnsToComponentColumns []int
}

// DefaultOptions returns Options with the standard logrus logger, discovery
// order and no map outputs.
func DefaultOptions() Options {
	return Options{
		Logger: logrus.StandardLogger(),
		Order:  OrderDiscovery,
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOrder selects how local indices are assigned.
func WithOrder(order Order) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithRowsToComponents requests dst[row] = component id for every row.
// dst must have at least NumRows elements.
func WithRowsToComponents(dst []int) Option {
	return func(o *Options) {
		o.RowsToComponents = dst
	}
}

// WithColumnsToComponents requests dst[column] = component id for every column.
// dst must have at least NumColumns elements.
func WithColumnsToComponents(dst []int) Option {
	return func(o *Options) {
		o.ColumnsToComponents = dst
	}
}

// WithRowsToComponentRows requests dst[row] = local row index inside the
// row's component. dst must have at least NumRows elements.
func WithRowsToComponentRows(dst []int) Option {
	return func(o *Options) {
		o.RowsToComponentRows = dst
	}
}

// WithColumnsToComponentColumns requests dst[column] = local column index
// inside the column's component. dst must have at least NumColumns elements.
func WithColumnsToComponentColumns(dst []int) Option {
	return func(o *Options) {
		o.ColumnsToComponentColumns = dst
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// validate checks the requested outputs against the input shape.
func (o *Options) validate(numRows, numColumns int) error {
	if o.Order != OrderDiscovery && o.Order != OrderOriginal {
		return fmt.Errorf("onesum: order %d: %w", int(o.Order), ErrPreconditionViolated)
	}
	buffers := []struct {
		name string
		dst  []int
		need int
	}{
		{"RowsToComponents", o.RowsToComponents, numRows},
		{"ColumnsToComponents", o.ColumnsToComponents, numColumns},
		{"RowsToComponentRows", o.RowsToComponentRows, numRows},
		{"ColumnsToComponentColumns", o.ColumnsToComponentColumns, numColumns},
	}
	for _, b := range buffers {
		if b.dst != nil && len(b.dst) < b.need {
			return fmt.Errorf("onesum: %s has %d elements, need %d: %w", b.name, len(b.dst), b.need, ErrPreconditionViolated)
		}
	}

	return nil
}
