package lexgo

import (
	"context"

	"github.com/hupe1980/lexgo/ranker"
	"golang.org/x/sync/errgroup"
)

// BatchEvaluate evaluates several queries concurrently. The index is
// immutable after build, so concurrent read-only evaluations are safe;
// each query gets its own Ranker from newRanker to preserve the
// one-ranker-per-evaluation contract. Results are positionally aligned
// with queries. The first failing query aborts the batch.
func (e *SearchEngine) BatchEvaluate(ctx context.Context, queries []string, opts Options, newRanker func() ranker.Ranker) ([][]Result, error) {
	g, ctx := errgroup.WithContext(ctx)

	results := make([][]Result, len(queries))
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Evaluate(query, opts, newRanker())
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
