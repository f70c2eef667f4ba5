package event

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/evil/jet"
)

func randomEvents(n int) []Event {
	rng := rand.New(rand.NewSource(7))
	ids := []int{1, -2, 3, 21, 21, 22, 11, 211}
	evts := make([]Event, n)
	for i := range evts {
		for k := 0; k < 1+rng.Intn(25); k++ {
			evts[i].Out = append(evts[i].Out, massless(
				ids[rng.Intn(len(ids))],
				1+rng.Float64()*50,
				rng.Float64()*6-3,
				rng.Float64()*6.2-3.1,
			))
		}
	}
	return evts
}

func TestClusterAllMatchesSequential(t *testing.T) {
	evts := randomEvents(40)
	s := ClusterSettings{
		Enabled:    true,
		Definition: jet.Definition{Algorithm: jet.Kt, Radius: 0.6, MinPt: 2},
		Selection:  PartonsAndHadrons,
	}

	for _, workers := range []int{0, 1, 3, 100} {
		all, err := s.ClusterAll(context.Background(), evts, workers)
		require.NoError(t, err)
		require.Len(t, all, len(evts))
		for i := range evts {
			want, err := s.Jets(&evts[i])
			require.NoError(t, err)
			assert.Equal(t, want, all[i], "workers %d event %d", workers, i)
		}
	}
}

func TestClusterAllDisabled(t *testing.T) {
	all, err := ClusterSettings{}.ClusterAll(context.Background(), randomEvents(5), 2)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for _, jets := range all {
		assert.Nil(t, jets)
	}
}

func TestClusterAllInvalid(t *testing.T) {
	s := ClusterSettings{Enabled: true, Definition: jet.Definition{Radius: -1}}
	_, err := s.ClusterAll(context.Background(), randomEvents(3), 2)
	assert.Error(t, err)
}

func TestClusterAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := ClusterSettings{Enabled: true, Definition: jet.DefaultDefinition()}
	_, err := s.ClusterAll(ctx, randomEvents(50), 1)
	// either every event was handed out before the cancellation was seen, or
	// the feeder stopped with ctx.Err()
	if err != nil {
		assert.Equal(t, context.Canceled, err)
	}
}
