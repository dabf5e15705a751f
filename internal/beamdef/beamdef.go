// Package beamdef reads beam definition files. Definitions describe the
// supports, the distributed loads and the optional section properties of a
// continuous beam, in YAML or JSON.
package beamdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gocba/internal/load"
)

// Load type discriminators.
const (
	TypeUniform    = "uniform"
	TypeTriangular = "triangular"
)

// Definition is the on-disk description of a beam problem. Units are SI:
// positions in m, intensities in N/m, elastic modulus in N/mm², inertia
// in cm⁴.
type Definition struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Supports    []float64 `json:"supports" yaml:"supports"`
	Loads       []LoadDef `json:"loads" yaml:"loads"`

	// Optional section properties for deflection analysis.
	Inertia  float64 `json:"inertia,omitempty" yaml:"inertia,omitempty"`
	EModulus float64 `json:"e_modulus,omitempty" yaml:"e_modulus,omitempty"`
}

// LoadDef is one distributed load entry. Type selects the variant:
// "uniform" uses Magnitude, "triangular" uses MagnitudeStart/MagnitudeEnd.
type LoadDef struct {
	Type           string  `json:"type" yaml:"type"`
	Magnitude      float64 `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	MagnitudeStart float64 `json:"magnitude_start,omitempty" yaml:"magnitude_start,omitempty"`
	MagnitudeEnd   float64 `json:"magnitude_end,omitempty" yaml:"magnitude_end,omitempty"`
	Start          float64 `json:"start" yaml:"start"`
	End            float64 `json:"end" yaml:"end"`
}

// LoadFromFile reads and validates a definition. The format is picked by
// extension: .yaml/.yml or .json.
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read beam file: %w", err)
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse YAML beam file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse JSON beam file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported beam file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition for structural problems before any
// analysis is attempted.
func (d *Definition) Validate() error {
	if len(d.Supports) < 2 {
		return fmt.Errorf("beam definition needs at least 2 supports, got %d", len(d.Supports))
	}
	if len(d.Loads) == 0 {
		return fmt.Errorf("beam definition needs at least one load")
	}
	if d.Inertia < 0 {
		return fmt.Errorf("inertia must not be negative, got %.6g", d.Inertia)
	}
	if d.EModulus < 0 {
		return fmt.Errorf("e_modulus must not be negative, got %.6g", d.EModulus)
	}

	for i, ld := range d.Loads {
		if ld.Start >= ld.End {
			return fmt.Errorf("load %d: start %.6g must be less than end %.6g", i+1, ld.Start, ld.End)
		}
		switch ld.Type {
		case TypeUniform:
			if ld.Magnitude == 0 {
				return fmt.Errorf("load %d: uniform load needs a non-zero magnitude", i+1)
			}
		case TypeTriangular:
			if ld.MagnitudeStart == 0 && ld.MagnitudeEnd == 0 {
				return fmt.Errorf("load %d: triangular load needs magnitude_start or magnitude_end", i+1)
			}
		default:
			return fmt.Errorf("load %d: unknown load type %q (want %q or %q)", i+1, ld.Type, TypeUniform, TypeTriangular)
		}
	}
	return nil
}

// BuildLoads converts the definition entries into load values.
func (d *Definition) BuildLoads() []load.Load {
	loads := make([]load.Load, 0, len(d.Loads))
	for _, ld := range d.Loads {
		switch ld.Type {
		case TypeUniform:
			loads = append(loads, load.Uniform{
				Magnitude: ld.Magnitude,
				Start:     ld.Start,
				End:       ld.End,
			})
		case TypeTriangular:
			loads = append(loads, load.Triangular{
				MagnitudeStart: ld.MagnitudeStart,
				MagnitudeEnd:   ld.MagnitudeEnd,
				Start:          ld.Start,
				End:            ld.End,
			})
		}
	}
	return loads
}
