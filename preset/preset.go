// Package preset holds the built-in datasets and examples of the visualizations.
//
// The catalogue is an embedded YAML document. Parse accepts a document of the same shape
// so hosts can ship their own examples.
package preset

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/mathviz/bayes"
	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/regression"
)

// DefaultName is the name of the entry each visualization starts from.
const DefaultName = "default"

//go:embed presets.yaml
var builtin []byte

// Dataset is a regression dataset together with the model the visualization starts with.
type Dataset struct {
	Name   string                 `yaml:"name"`
	Title  string                 `yaml:"title"`
	Points []geom.Point           `yaml:"points"`
	Model  regression.LinearModel `yaml:"model"`
}

// Labels describe the three Bayes inputs in the terms of an example.
type Labels struct {
	Prior             string `yaml:"prior"`
	Likelihood        string `yaml:"likelihood"`
	FalsePositiveRate string `yaml:"false_positive_rate"`
}

// BayesExample is a named set of Bayes inputs.
type BayesExample struct {
	Name           string `yaml:"name"`
	Title          string `yaml:"title"`
	bayes.Evidence `yaml:",inline"`
	Labels         Labels `yaml:"labels"`
}

// Catalog is a set of presets.
type Catalog struct {
	Regression []Dataset      `yaml:"regression"`
	Bayes      []BayesExample `yaml:"bayes"`
}

var loadBuiltin = sync.OnceValues(func() (*Catalog, error) {
	return Parse(builtin)
})

// Builtin returns the embedded catalogue. The result is shared and must not be modified.
func Builtin() *Catalog {
	c, err := loadBuiltin()
	if err != nil {
		panic(fmt.Sprintf("preset: embedded catalogue is invalid: %v", err))
	}

	return c
}

// Parse decodes a YAML catalogue.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	return &c, nil
}

// Dataset returns the regression dataset called name. The returned points are a copy.
func (c *Catalog) Dataset(name string) (Dataset, error) {
	i := slices.IndexFunc(c.Regression, func(d Dataset) bool { return d.Name == name })
	if i < 0 {
		return Dataset{}, fmt.Errorf("%w: regression dataset %q", errs.ErrUnknownPreset, name)
	}

	d := c.Regression[i]
	d.Points = slices.Clone(d.Points)

	return d, nil
}

// BayesExample returns the Bayes example called name.
func (c *Catalog) BayesExample(name string) (BayesExample, error) {
	i := slices.IndexFunc(c.Bayes, func(e BayesExample) bool { return e.Name == name })
	if i < 0 {
		return BayesExample{}, fmt.Errorf("%w: bayes example %q", errs.ErrUnknownPreset, name)
	}

	return c.Bayes[i], nil
}

// BayesNames returns the names of the Bayes examples in catalogue order.
func (c *Catalog) BayesNames() []string {
	names := make([]string, len(c.Bayes))
	for i, e := range c.Bayes {
		names[i] = e.Name
	}

	return names
}

// DefaultDataset returns the built-in regression dataset.
func DefaultDataset() Dataset {
	d, err := Builtin().Dataset(DefaultName)
	if err != nil {
		panic(err)
	}

	return d
}

// DefaultEvidence returns the built-in starting Bayes inputs.
func DefaultEvidence() bayes.Evidence {
	e, err := Builtin().BayesExample(DefaultName)
	if err != nil {
		panic(err)
	}

	return e.Evidence
}
