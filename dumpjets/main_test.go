package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/evil/event"
	"github.com/decibelcooper/evil/jet"
)

func TestDump(t *testing.T) {
	evt := event.Event{Out: []event.Particle{
		{ID: 21, Y: -1.5},
		{ID: 1, Y: 0.25},
		{ID: 22, Y: 2},
	}}
	jets := []jet.PseudoJet{
		jet.New(10, 0, 0, 10),
		jet.New(0, 30, 0, 50),
	}

	var buf bytes.Buffer
	dump(&buf, 4, &evt, jets)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "event 4: 3 particles in y [-1.50, 2.00], 2 jets", lines[0])
	assert.Contains(t, lines[1], "pt=   30.0000")
	assert.Contains(t, lines[1], "m=  40.0000")
	assert.Contains(t, lines[2], "pt=   10.0000")
	assert.Contains(t, lines[2], "m=   0.0000")
}
