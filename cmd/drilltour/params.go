package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/drillpath/tsp"
)

// Params is the YAML parameter file. Omitted keys keep their defaults.
type Params struct {
	Alpha            *float64 `yaml:"alpha"`
	Beta             *float64 `yaml:"beta"`
	DecayFactor      *float64 `yaml:"decay_factor"`
	Lambda           *float64 `yaml:"lambda"`
	Epsilon          *float64 `yaml:"epsilon"`
	TabuLength       *int     `yaml:"tabu_length"`
	MinTenure        *int     `yaml:"min_tenure"`
	MaxTenure        *int     `yaml:"max_tenure"`
	DecayInterval    *int     `yaml:"decay_interval"`
	EliteSize        *int     `yaml:"elite_size"`
	MaxIterations    *int     `yaml:"max_iterations"`
	Seed             *int64   `yaml:"seed"`
	Init             *string  `yaml:"init"`
	FrequencyPenalty *bool    `yaml:"frequency_penalty"`
	EliteRestart     *bool    `yaml:"elite_restart"`
	Shaking          *bool    `yaml:"shaking"`
}

// LoadParams reads a parameter file. Unknown keys are rejected.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("params: read %s: %w", path, err)
	}

	var p Params
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("params: parse %s: %w", path, err)
	}

	return &p, nil
}

// Apply overlays the file values on o.
func (p *Params) Apply(o *tsp.Options) error {
	setF := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setI := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setB := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	setF(&o.Alpha, p.Alpha)
	setF(&o.Beta, p.Beta)
	setF(&o.DecayFactor, p.DecayFactor)
	setF(&o.Lambda, p.Lambda)
	setF(&o.Epsilon, p.Epsilon)
	setI(&o.TabuLength, p.TabuLength)
	setI(&o.MinTenure, p.MinTenure)
	setI(&o.MaxTenure, p.MaxTenure)
	setI(&o.DecayInterval, p.DecayInterval)
	setI(&o.EliteSize, p.EliteSize)
	setI(&o.MaxIterations, p.MaxIterations)
	setB(&o.EnableFrequencyPenalty, p.FrequencyPenalty)
	setB(&o.EnableEliteRestart, p.EliteRestart)
	setB(&o.EnableShaking, p.Shaking)
	if p.Seed != nil {
		o.Seed = *p.Seed
	}
	if p.Init != nil {
		policy, err := parseInitPolicy(*p.Init)
		if err != nil {
			return err
		}
		o.Init = policy
	}

	return nil
}

// parseInitPolicy maps a policy name to tsp.InitPolicy.
func parseInitPolicy(s string) (tsp.InitPolicy, error) {
	switch s {
	case "swaps":
		return tsp.InitSwaps, nil
	case "uniform":
		return tsp.InitUniform, nil
	case "identity":
		return tsp.InitIdentity, nil
	default:
		return 0, fmt.Errorf("unknown init policy %q (want swaps, uniform or identity)", s)
	}
}
