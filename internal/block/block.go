package block

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/arith/internal/block/column"
)

// ErrColumnNotFound is returned when a block has no column with the requested name.
var ErrColumnNotFound = errors.New("column not found")

// A Block is a set of named columns holding the same number of rows.
type Block struct {
	names   []string
	columns []column.Column
	len     int
}

// New returns a block made of the given columns, in order.
// All columns must have the same length and names must be unique.
func New(names []string, columns []column.Column) (*Block, error) {
	if len(names) != len(columns) {
		return nil, errors.Errorf("got %d names for %d columns", len(names), len(columns))
	}

	b := Block{
		names:   make([]string, 0, len(names)),
		columns: make([]column.Column, 0, len(columns)),
	}
	for i := range columns {
		if err := b.Add(names[i], columns[i]); err != nil {
			return nil, err
		}
	}

	return &b, nil
}

// Add appends a column to the block.
func (b *Block) Add(name string, c column.Column) error {
	for _, n := range b.names {
		if n == name {
			return errors.Errorf("duplicate column %q", name)
		}
	}

	if len(b.columns) > 0 && c.Len() != b.len {
		return errors.Errorf("column %q has %d rows, expected %d", name, c.Len(), b.len)
	}

	b.names = append(b.names, name)
	b.columns = append(b.columns, c)
	b.len = c.Len()
	return nil
}

// Len returns the number of rows in the block.
func (b *Block) Len() int {
	return b.len
}

// Width returns the number of columns in the block.
func (b *Block) Width() int {
	return len(b.columns)
}

// Names returns the column names, in order.
func (b *Block) Names() []string {
	return b.names
}

// Column returns the column with the given name.
func (b *Block) Column(name string) (column.Column, error) {
	for i, n := range b.names {
		if n == name {
			return b.columns[i], nil
		}
	}

	return nil, errors.Wrapf(ErrColumnNotFound, "%q", name)
}

// ColumnAt returns the i-th column.
func (b *Block) ColumnAt(i int) column.Column {
	return b.columns[i]
}
