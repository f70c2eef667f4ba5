package evil

import (
	"flag"
	"fmt"
	"strconv"

	"gopkg.in/gcfg.v1"

	"github.com/decibelcooper/evil/event"
	"github.com/decibelcooper/evil/jet"
)

const ExampleConfigFile = `[Clustering]

# Cluster the outgoing partons of every event into jets.
Enabled = true

# One of anti-kt, kt or Cambridge/Aachen.
Algorithm = anti-kt

# Jet radius R.
Radius = 0.4

# Jets with a transverse momentum (GeV) below min-pt are dropped after the
# clustering.
Min-Pt = 5

# Also cluster hadrons, not only quarks and gluons.
# Hadrons = false

[Plot]

# yphi or ylogpt.
Kind = yphi

# Size of the output in inches.
Width = 8
Height = 5`

type ClusteringConfig struct {
	Enabled   bool
	Algorithm jet.Algorithm
	Radius    float64
	MinPt     float64 `gcfg:"min-pt"`
	Hadrons   bool
}

type PlotConfig struct {
	Kind   string
	Width  float64
	Height float64
}

// Config is the content of an evil configuration file.
type Config struct {
	Clustering ClusteringConfig
	Plot       PlotConfig
}

func DefaultConfig() Config {
	def := jet.DefaultDefinition()
	return Config{
		Clustering: ClusteringConfig{
			Algorithm: def.Algorithm,
			Radius:    def.Radius,
			MinPt:     def.MinPt,
		},
		Plot: PlotConfig{
			Kind:   "yphi",
			Width:  8,
			Height: 5,
		},
	}
}

// ReadConfig reads fname on top of DefaultConfig.
func ReadConfig(fname string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadFileInto(&c, fname); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// ParseConfig parses str on top of DefaultConfig.
func ParseConfig(str string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadStringInto(&c, str); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	if err := c.Definition().Validate(); err != nil {
		return err
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("evil: invalid plot size %vx%v", c.Plot.Width, c.Plot.Height)
	}
	return nil
}

func (c *Config) Definition() jet.Definition {
	return jet.Definition{
		Algorithm: c.Clustering.Algorithm,
		Radius:    c.Clustering.Radius,
		MinPt:     c.Clustering.MinPt,
	}
}

// Settings returns the clustering settings of c.
func (c *Config) Settings() event.ClusterSettings {
	sel := event.Partons
	if c.Clustering.Hadrons {
		sel = event.PartonsAndHadrons
	}
	return event.ClusterSettings{
		Enabled:    c.Clustering.Enabled,
		Definition: c.Definition(),
		Selection:  sel,
	}
}

// ApplyFlags overrides c with the flags of fs that were set on the command
// line, then validates the result. The recognised flags are kind, cluster,
// algorithm, radius, minpt and hadrons; other flags are ignored.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case "kind":
			c.Plot.Kind = v
		case "cluster":
			c.Clustering.Enabled, err = strconv.ParseBool(v)
		case "algorithm":
			err = c.Clustering.Algorithm.Set(v)
		case "radius":
			c.Clustering.Radius, err = strconv.ParseFloat(v, 64)
		case "minpt":
			c.Clustering.MinPt, err = strconv.ParseFloat(v, 64)
		case "hadrons":
			c.Clustering.Hadrons, err = strconv.ParseBool(v)
		}
		if err != nil {
			err = fmt.Errorf("evil: flag -%s: %w", f.Name, err)
		}
	})
	if err != nil {
		return err
	}
	return c.Validate()
}
