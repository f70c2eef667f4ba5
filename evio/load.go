package evio

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/decibelcooper/evil/event"
)

// Read reads all events of r, which may be gzip or lz4 compressed.
func Read(r io.Reader) ([]event.Event, Format, error) {
	br, err := Decompress(r)
	if err != nil {
		return nil, Unknown, err
	}
	format, err := Sniff(br)
	if err != nil {
		return nil, Unknown, fmt.Errorf("evio: %w", err)
	}

	var evts []event.Event
	switch format {
	case LHEF:
		evts, err = ReadLHEF(br)
	case HepMC:
		evts, err = ReadHepMC(br)
	default:
		return nil, Unknown, fmt.Errorf("evio: unknown file format")
	}
	return evts, format, err
}

// ReadFile reads all events of the named file.
func ReadFile(name string, logger *zap.Logger) ([]event.Event, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if IsProio(name) {
		logger.Debug("reading proio file", zap.String("file", name))
		evts, err := ReadProio(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return evts, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	evts, format, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("read event file",
		zap.String("file", name),
		zap.Stringer("format", format),
		zap.Int("events", len(evts)),
	)
	return evts, nil
}

// Load reads the named files concurrently and returns their events in the
// order of names.
func Load(ctx context.Context, names []string, logger *zap.Logger) ([]event.Event, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	perFile := make([][]event.Event, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Info("loading events", zap.String("file", name))
			evts, err := ReadFile(name, logger)
			if err != nil {
				return err
			}
			perFile[i] = evts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var evts []event.Event
	for _, e := range perFile {
		evts = append(evts, e...)
	}
	logger.Info("loaded events", zap.Int("events", len(evts)), zap.Int("files", len(names)))
	return evts, nil
}
