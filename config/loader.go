package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/stepflow-io/stepflow/layout"
	"github.com/stepflow-io/stepflow/model"
	"github.com/stepflow-io/stepflow/sim"
)

// Document is a complete flow document: the workflow/step catalog plus
// simulation and layout settings.
type Document struct {
	// Flow is the workflow catalog handed to the simulator.
	Flow model.FlowConfig `yaml:"flow"`
	// Simulation tunes simulated runs.
	Simulation sim.Options `yaml:"simulation"`
	// Layout selects the layout algorithm and its options.
	Layout LayoutConfig `yaml:"layout"`
}

// LayoutConfig pairs an algorithm selector with its options.
type LayoutConfig struct {
	// Algorithm selects the layout strategy.
	Algorithm layout.Algorithm `yaml:"algorithm"`
	// Options tunes spacing, padding, and direction.
	Options layout.Options `yaml:"options"`
}

// Defaults returns a document with default settings and an empty catalog.
func Defaults() *Document {
	return &Document{
		Layout: LayoutConfig{
			Algorithm: layout.AlgorithmHierarchical,
			Options: layout.Options{
				Spacing:   layout.Vector{X: layout.DefaultSpacingX, Y: layout.DefaultSpacingY},
				Padding:   layout.Vector{X: layout.DefaultPaddingX, Y: layout.DefaultPaddingY},
				Direction: layout.DirectionTB,
			},
		},
	}
}

// Loader loads flow documents with defaults-then-file precedence.
type Loader struct {
	path   string
	logger *zap.Logger
}

// NewLoader creates a loader with no config path.
func NewLoader() *Loader {
	return &Loader{logger: zap.NewNop()}
}

// WithConfigPath sets the YAML file to load over the defaults.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.path = path
	return l
}

// WithLogger sets the loader's logger.
func (l *Loader) WithLogger(logger *zap.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load builds the document: defaults, then the YAML file when a path is
// set, then structural validation of the flow section.
func (l *Loader) Load() (*Document, error) {
	doc := Defaults()

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", l.path, err)
		}
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", l.path, err)
		}
		l.logger.Info("flow document loaded", zap.String("path", l.path))
	}

	if err := doc.Flow.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return doc, nil
}

// Parse builds a document from in-memory YAML, with the same defaults and
// validation as Load.
func Parse(data []byte) (*Document, error) {
	doc := Defaults()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := doc.Flow.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return doc, nil
}
