package environment

import (
	"github.com/chaisql/arith/internal/block"
	"github.com/chaisql/arith/internal/block/column"
)

// Environment contains information about the context in which
// the expression is evaluated.
type Environment struct {
	block *block.Block
	opts  []column.Option
}

// New returns an environment evaluating expressions against b.
// opts are passed to every vectorized function call.
func New(b *block.Block, opts ...column.Option) *Environment {
	return &Environment{
		block: b,
		opts:  opts,
	}
}

// Clone returns an environment with the same options, evaluating against b.
func (e *Environment) Clone(b *block.Block) *Environment {
	return &Environment{
		block: b,
		opts:  e.opts,
	}
}

func (e *Environment) GetBlock() (*block.Block, bool) {
	return e.block, e.block != nil
}

// ApplyOptions returns the options of the vectorized function calls.
func (e *Environment) ApplyOptions() []column.Option {
	return e.opts
}
