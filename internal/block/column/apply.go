package column

import (
	"math"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/chaisql/arith/internal/arith"
	errs "github.com/chaisql/arith/internal/errors"
	"github.com/chaisql/arith/internal/types"
)

var (
	// ErrLengthMismatch is returned when the columns of a binary function
	// don't have the same number of rows.
	ErrLengthMismatch = errors.New("column lengths differ")

	// ErrTypeMismatch is returned when the columns of a binary function
	// don't hold the same type.
	ErrTypeMismatch = errors.New("column types differ")
)

// Options of the apply layer.
type Options struct {
	// Maximum number of chunks processed at the same time.
	// Values lower than 2 process the whole column on the calling goroutine.
	Parallelism int
	// Number of rows per chunk.
	ChunkSize int
}

func defaultOptions() *Options {
	return &Options{
		Parallelism: 1,
		ChunkSize:   blockSize / 8,
	}
}

// An Option configures the apply layer.
type Option func(*Options)

// WithParallelism sets the maximum number of chunks processed concurrently.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithChunkSize sets the number of rows per chunk.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.ChunkSize = n
		}
	}
}

// Apply computes k on each pair of rows of a and b and returns the results
// in a new vector. Rows where a or b is null are null in the result and
// k is not called for them.
// If k fails, Apply returns no result and reports the failure of the
// lowest failing row, wrapped in an *errors.RowError naming fn.
func Apply[T types.Number](fn string, a, b *Vector[T], k arith.Kernel[T], opts ...Option) (*Vector[T], error) {
	if a.Len() != b.Len() {
		return nil, errors.Wrapf(ErrLengthMismatch, "%s: %d and %d rows", fn, a.Len(), b.Len())
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	n := a.Len()
	out := &Vector[T]{
		data:  make([]T, n),
		nulls: a.nulls.Clone(nil),
	}
	out.nulls.Or(b.nulls)

	if o.Parallelism < 2 || n <= o.ChunkSize {
		row, err := applyRange(out, a, b, k, 0, n)
		if err != nil {
			return nil, errs.NewRowError(fn, row, err)
		}
		return out, nil
	}

	row, err := applyChunks(out, a, b, k, o)
	if err != nil {
		return nil, errs.NewRowError(fn, row, err)
	}

	return out, nil
}

// applyRange computes rows [start, end) and stops at the first failure.
func applyRange[T types.Number](out, a, b *Vector[T], k arith.Kernel[T], start, end int) (int, error) {
	for i := start; i < end; i++ {
		if out.nulls.Contains(uint32(i)) {
			continue
		}

		v, err := k(a.data[i], b.data[i])
		if err != nil {
			return i, err
		}
		out.data[i] = v
	}

	return -1, nil
}

type chunkFailure struct {
	row int
	err error
}

// applyChunks splits the rows in chunks computed concurrently.
// Each chunk records its first failure, so the lowest failing row is the
// failure of the lowest failing chunk. Chunks starting after a known failure
// are skipped since they can't hold a lower one.
func applyChunks[T types.Number](out, a, b *Vector[T], k arith.Kernel[T], o *Options) (int, error) {
	n := out.Len()
	chunks := (n + o.ChunkSize - 1) / o.ChunkSize
	failures := make([]chunkFailure, chunks)

	var lowest atomic.Int64
	lowest.Store(math.MaxInt64)

	var g errgroup.Group
	g.SetLimit(o.Parallelism)

	for c := 0; c < chunks; c++ {
		c := c
		start := c * o.ChunkSize
		end := min(start+o.ChunkSize, n)

		g.Go(func() error {
			if int64(start) > lowest.Load() {
				return nil
			}

			row, err := applyRange(out, a, b, k, start, end)
			if err == nil {
				return nil
			}

			failures[c] = chunkFailure{row: row, err: err}
			for {
				cur := lowest.Load()
				if int64(row) >= cur || lowest.CompareAndSwap(cur, int64(row)) {
					break
				}
			}
			return nil
		})
	}

	// chunks report failures through the failures slice, never through the group
	_ = g.Wait()

	for _, f := range failures {
		if f.err != nil {
			return f.row, f.err
		}
	}

	return -1, nil
}
