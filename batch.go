package roman

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EvaluateAll evaluates each expression as by Evaluate, using up to the
// calculator's worker count at once. The results are in the same order as the
// expressions. If ctx is canceled before EvaluateAll returns, the result is nil
// and the context's error.
func (c *Calculator) EvaluateAll(ctx context.Context, exprs []string) ([]string, error) {
	r := make([]string, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, e := range exprs {
		if gctx.Err() != nil {
			break
		}
		i, e := i, e // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r[i] = c.Evaluate(e)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// Wait cancels gctx, so only the caller's context says whether we
		// stopped early.
		err = ctx.Err()
	}
	if err != nil {
		c.log.Debug("batch canceled", zap.Int("expressions", len(exprs)), zap.Error(err))
		return nil, err
	}
	return r, nil
}
