package ephem

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/navagraha/jyotish/internal/graha"
)

// elementsFile is the on-disk shape of an element override catalog:
//
//	epoch = 2451545.0
//
//	[[body]]
//	name = "Mars"
//	elements = [1.523, 6.02, 0.041, 0.084, 0.012, 0.020]
//
// The elements array follows the provider ordering contract [a,l,h,k,p,q],
// with l in radians. Overrides are osculating at the stated epoch and are
// served as-is for any requested instant; they are meant for spot checks
// and for swapping in externally computed elements near the birth epoch.
type elementsFile struct {
	Epoch  float64     `toml:"epoch"`
	Bodies []bodyEntry `toml:"body"`
}

type bodyEntry struct {
	Name     string    `toml:"name"`
	Elements []float64 `toml:"elements"`
}

// FileProvider layers per-body element overrides from a TOML catalog over
// a fallback provider.
type FileProvider struct {
	Epoch     float64
	overrides map[graha.Graha]Elements
	fallback  Provider
}

// LoadFileProvider parses the catalog at path. Bodies absent from the file
// fall through to fallback.
func LoadFileProvider(path string, fallback Provider) (*FileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading elements catalog: %w", err)
	}

	var file elementsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing elements catalog: %w", err)
	}

	fp := &FileProvider{
		Epoch:     file.Epoch,
		overrides: make(map[graha.Graha]Elements, len(file.Bodies)),
		fallback:  fallback,
	}
	for _, b := range file.Bodies {
		g, err := graha.Parse(b.Name)
		if err != nil {
			return nil, fmt.Errorf("elements catalog: %w", err)
		}
		if len(b.Elements) != 6 {
			return nil, fmt.Errorf("%w: body %s has %d elements, want 6 [a,l,h,k,p,q]",
				ErrData, b.Name, len(b.Elements))
		}
		el := Elements{
			A: b.Elements[0], L: b.Elements[1],
			H: b.Elements[2], K: b.Elements[3],
			P: b.Elements[4], Q: b.Elements[5],
		}
		if err := el.Validate(); err != nil {
			return nil, fmt.Errorf("body %s: %w", b.Name, err)
		}
		fp.overrides[g] = el
	}
	return fp, nil
}

// ElementsAt serves the override for g when present, otherwise defers to
// the fallback provider.
func (fp *FileProvider) ElementsAt(jd float64, g graha.Graha) (Elements, error) {
	if el, ok := fp.overrides[g]; ok {
		return el, nil
	}
	if fp.fallback == nil {
		return Elements{}, fmt.Errorf("%w: %s", ErrNoElements, g)
	}
	return fp.fallback.ElementsAt(jd, g)
}
