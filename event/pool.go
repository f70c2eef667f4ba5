package event

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/decibelcooper/evil/jet"
)

// ClusterAll computes the jets of every event with at most workers
// goroutines, or GOMAXPROCS of them when workers is not positive. The jets of
// evts[i] are returned at index i.
func (s ClusterSettings) ClusterAll(ctx context.Context, evts []Event, workers int) ([][]jet.PseudoJet, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if err := s.Definition.Validate(); s.Enabled && err != nil {
		return nil, err
	}

	jets := make([][]jet.PseudoJet, len(evts))
	next := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(next)
		for i := range evts {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range next {
				js, err := s.Jets(&evts[i])
				if err != nil {
					return err
				}
				jets[i] = js
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return jets, nil
}
