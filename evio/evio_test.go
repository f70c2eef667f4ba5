package evio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"<LesHouchesEvents version=\"1.0\">\n", LHEF},
		{"\n  <LesHouchesEvents version=\"3.0\">", LHEF},
		{"<?xml version=\"1.0\"?>\n<LesHouchesEvents version=\"1.0\">", LHEF},
		{"\nHepMC::Version 2.06.09\nHepMC::IO_GenEvent-START_EVENT_LISTING\n", HepMC},
		{"HepMC::Version 2.06.09", HepMC},
		{"", Unknown},
		{"hello world", Unknown},
	} {
		got, err := Sniff(bufio.NewReader(strings.NewReader(tc.in)))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q", tc.in)
	}
}

func TestSniffDoesNotConsume(t *testing.T) {
	in := "HepMC::Version 2.06.09\n"
	br := bufio.NewReader(strings.NewReader(in))
	_, err := Sniff(br)
	require.NoError(t, err)
	rest, err := ioutil.ReadAll(br)
	require.NoError(t, err)
	assert.Equal(t, in, string(rest))
}

func TestDecompress(t *testing.T) {
	const content = "<LesHouchesEvents version=\"1.0\">\n</LesHouchesEvents>\n"

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var lz bytes.Buffer
	lw := lz4.NewWriter(&lz)
	_, err = lw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	for name, in := range map[string][]byte{
		"plain": []byte(content),
		"gzip":  gz.Bytes(),
		"lz4":   lz.Bytes(),
	} {
		br, err := Decompress(bytes.NewReader(in))
		require.NoError(t, err, name)
		format, err := Sniff(br)
		require.NoError(t, err, name)
		assert.Equal(t, LHEF, format, name)
		out, err := ioutil.ReadAll(br)
		require.NoError(t, err, name)
		assert.Equal(t, content, string(out), name)
	}
}

func TestBuilderKeepsOutgoing(t *testing.T) {
	var b builder
	b.add(2212, 4, 0, 0, 6500, 6500)
	b.add(21, 1, 10, 0, 0, 10)
	b.add(23, 2, 0, 0, 0, 91.2)
	b.add(-11, 1, 0, 20, 5, 20.6155)
	b.add(1, 1, -10, -20, 0, 22.3607)

	require.Len(t, b.evt.Out, 3)
	assert.Equal(t, 21, b.evt.Out[0].ID)
	assert.Equal(t, -11, b.evt.Out[1].ID)
	assert.Equal(t, 1, b.evt.Out[2].ID)
	assert.InDelta(t, 10, b.evt.Out[0].Pt, 1e-12)
}

func TestIsProio(t *testing.T) {
	assert.True(t, IsProio("events.proio"))
	assert.True(t, IsProio("/data/run1.PROIO"))
	assert.False(t, IsProio("events.lhe.gz"))
	assert.False(t, IsProio("proio"))
}

func TestReadUnknownFormat(t *testing.T) {
	_, _, err := Read(strings.NewReader("not an event file"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "evio-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	bad := filepath.Join(dir, "bad.lhe")
	require.NoError(t, ioutil.WriteFile(bad, []byte("garbage"), 0644))

	_, err = Load(context.Background(), []string{filepath.Join(dir, "missing.lhe")}, nil)
	assert.Error(t, err)
	_, err = Load(context.Background(), []string{bad}, nil)
	assert.Error(t, err)

	evts, err := Load(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, evts)
}

const lhefEvent = `<LesHouchesEvents version="1.0">
<!--
two partons in, two partons out
-->
<init>
    2212   -2212  9.800000E+02  9.800000E+02     0     0     7     7     3     1
  5.220106E+00  5.384128E-01  1.000000E+00    81
</init>
<event>
     4    81  1.000000E+00  1.733125E+02  7.819848E-03  1.156692E-01
       1   -1    0    0  101    0  0.0000000000E+00  0.0000000000E+00  1.0000000000E+02  1.0000000000E+02  0.0000000000E+00 0. 9.
      -1   -1    0    0    0  101  0.0000000000E+00  0.0000000000E+00 -1.0000000000E+02  1.0000000000E+02  0.0000000000E+00 0. 9.
       1    1    1    2  101    0  5.0000000000E+01  0.0000000000E+00  1.0000000000E+01  5.0990195136E+01  0.0000000000E+00 0. 9.
      -1    1    1    2    0  101 -5.0000000000E+01  0.0000000000E+00 -1.0000000000E+01  5.0990195136E+01  0.0000000000E+00 0. 9.
</event>
</LesHouchesEvents>
`

const hepmcEvent = `HepMC::Version 2.06.09
HepMC::IO_GenEvent-START_EVENT_LISTING
E 1 0 0.0e+00 0.0e+00 0.0e+00 20 -1 1 1 2 0 0
U GEV MM
V -1 0 0.0e+00 0.0e+00 0.0e+00 0.0e+00 2 2 0
P 1 2212 0.0e+00 0.0e+00 7.0e+03 7.0e+03 0.0e+00 4 0.0e+00 0.0e+00 -1 0
P 2 2212 0.0e+00 0.0e+00 -7.0e+03 7.0e+03 0.0e+00 4 0.0e+00 0.0e+00 -1 0
P 3 21 5.0e+01 0.0e+00 1.0e+01 5.0990195135927848e+01 0.0e+00 1 0.0e+00 0.0e+00 0 0
P 4 2 -5.0e+01 0.0e+00 -1.0e+01 5.0990195135927848e+01 0.0e+00 1 0.0e+00 0.0e+00 0 0
HepMC::IO_GenEvent-END_EVENT_LISTING
`

func TestReadRecords(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
		format  Format
		ids     []int
	}{
		{"lhef", lhefEvent, LHEF, []int{1, -1}},
		{"hepmc", hepmcEvent, HepMC, []int{21, 2}},
	} {
		evts, format, err := Read(strings.NewReader(tc.content))
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.format, format, tc.name)
		require.Len(t, evts, 1, tc.name)

		out := evts[0].Out
		require.Len(t, out, 2, tc.name)
		for i, p := range out {
			assert.Equal(t, tc.ids[i], p.ID, tc.name)
			assert.InDelta(t, 50, p.Pt, 1e-9, tc.name)
		}
		assert.InDelta(t, 0, out[0].Phi, 1e-12, tc.name)
		assert.InDelta(t, math.Pi, out[1].Phi, 1e-12, tc.name)
		assert.True(t, out[0].Y > 0, tc.name)
		assert.InDelta(t, -out[0].Y, out[1].Y, 1e-9, tc.name)
	}
}

func TestReadFileCompressed(t *testing.T) {
	dir, err := ioutil.TempDir("", "evio-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte(lhefEvent))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	name := filepath.Join(dir, "events.lhe.gz")
	require.NoError(t, ioutil.WriteFile(name, buf.Bytes(), 0644))

	evts, err := Load(context.Background(), []string{name, name}, nil)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, 1, evts[1].Out[0].ID)
}
