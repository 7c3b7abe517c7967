package filmlook

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/filmlook/filmlook/pkg/fcolor"
)

// A Config is a preset: the look parameters plus renderer options,
// loadable from a yaml file. Tint fields are optional "#rrggbb"
// overrides for the stock palette; empty means stock.
type Config struct {
	Verbosity int

	Workers      int     // render goroutines, 0 = one per CPU
	FPS          float64 // frame sequence playback rate, drives the stream clock
	DumpPreClamp bool    // also write the pre-clamp composite as .hdr

	Params Params

	TealColor         string
	OrangeColor       string
	HalationTint      string
	SecondaryGlowTint string
}

func NewConfig() Config {
	return Config{
		FPS:    30,
		Params: DefaultParams(),
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}
	return newConfigFromYaml(contents)
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Look resolves the preset into the immutable value the kernel runs on,
// parsing any palette overrides.
func (c Config)Look() (Look, error) {
	lk := Look{Params: c.Params, Palette: StockPalette()}

	overrides := []struct {
		hex  string
		dest *fcolor.RGB
	}{
		{c.TealColor, &lk.Palette.Teal},
		{c.OrangeColor, &lk.Palette.Orange},
		{c.HalationTint, &lk.Palette.HalationTint},
		{c.SecondaryGlowTint, &lk.Palette.SecondaryGlowTint},
	}
	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		rgb, err := fcolor.FromHex(o.hex)
		if err != nil {
			return lk, err
		}
		*o.dest = rgb
	}

	return lk, nil
}
