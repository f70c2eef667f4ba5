package evio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// Format is an event file format.
type Format int

const (
	Unknown Format = iota
	LHEF
	HepMC
	Proio
)

func (f Format) String() string {
	switch f {
	case LHEF:
		return "LHEF"
	case HepMC:
		return "HepMC"
	case Proio:
		return "proio"
	}
	return "unknown"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}

	lhefMagic  = []byte("<LesHouchesEvents")
	hepmcMagic = []byte("HepMC")
)

const sniffLen = 512

// Sniff guesses the format of the (decompressed) stream from its first
// bytes, ignoring leading white space. It does not consume any input.
func Sniff(r *bufio.Reader) (Format, error) {
	buf, err := r.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return Unknown, err
	}
	buf = bytes.TrimLeft(buf, " \t\r\n")
	switch {
	case bytes.HasPrefix(buf, lhefMagic):
		return LHEF, nil
	case bytes.HasPrefix(buf, hepmcMagic):
		return HepMC, nil
	case bytes.HasPrefix(buf, []byte("<?xml")) && bytes.Contains(buf, lhefMagic):
		return LHEF, nil
	}
	return Unknown, nil
}

// IsProio reports whether name is a proio file, which is recognised by its
// extension.
func IsProio(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".proio")
}

// Decompress returns a reader of the decompressed content of r when r starts
// with a gzip or lz4 frame header, and r itself otherwise.
func Decompress(r io.Reader) (*bufio.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(lz4Magic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("evio: gzip: %w", err)
		}
		return bufio.NewReader(zr), nil
	case bytes.HasPrefix(head, lz4Magic):
		return bufio.NewReader(lz4.NewReader(br)), nil
	}
	return br, nil
}
