package tournament

import (
	"errors"
	"fmt"

	"github.com/justinjudd/tourney/models"
)

var (
	// ErrUnknownFormat is returned when a format was never registered
	ErrUnknownFormat = errors.New("unknown tournament format")
	// ErrOptionsMismatch is returned when a config carries options of another format
	ErrOptionsMismatch = errors.New("options do not match format")
)

// Format is the contract every tournament format fulfills. A format creates a default config for a roster, validates configs and turns a valid config into a structure
type Format interface {
	Type() models.FormatType
	DefaultConfig(participants []*models.Participant) models.Config
	Validate(cfg models.Config) models.ValidationResult
	Generate(cfg models.Config) (*models.Structure, error)
}

// Registry maps format discriminators to formats. Build one at start up and pass it to whoever needs it, it is read only afterwards and needs no locking
type Registry struct {
	formats map[models.FormatType]Format
	order   []models.FormatType
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{formats: map[models.FormatType]Format{}}
}

// NewStandardRegistry returns a registry holding every built in format
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	for _, f := range []Format{
		SingleElimination{},
		DoubleElimination{},
		RoundRobin{},
		Swiss{},
		FreeForAll{},
		GroupKnockout{},
		RacingMK{},
		RacingF1{},
	} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a format, registering the same discriminator twice is an error
func (r *Registry) Register(f Format) error {
	if _, ok := r.formats[f.Type()]; ok {
		return fmt.Errorf("format %q is already registered", f.Type())
	}
	r.formats[f.Type()] = f
	r.order = append(r.order, f.Type())
	return nil
}

// Get looks a format up by its discriminator
func (r *Registry) Get(t models.FormatType) (Format, error) {
	f, ok := r.formats[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, t)
	}
	return f, nil
}

// MustGet is Get for wiring code, an unknown format is a programming error and panics
func (r *Registry) MustGet(t models.FormatType) Format {
	f, err := r.Get(t)
	if err != nil {
		panic(err)
	}
	return f
}

// Formats lists the registered discriminators in registration order
func (r *Registry) Formats() []models.FormatType {
	out := make([]models.FormatType, len(r.order))
	copy(out, r.order)
	return out
}

// Generate dispatches a config to its format
func (r *Registry) Generate(cfg models.Config) (*models.Structure, error) {
	f, err := r.Get(cfg.Format)
	if err != nil {
		return nil, err
	}
	return f.Generate(cfg)
}

// Validate dispatches a config to its format
func (r *Registry) Validate(cfg models.Config) (models.ValidationResult, error) {
	f, err := r.Get(cfg.Format)
	if err != nil {
		return models.ValidationResult{}, err
	}
	return f.Validate(cfg), nil
}

func optionsMismatch(want models.FormatType, got models.FormatOptions) error {
	return fmt.Errorf("%w: %s generator given %s options", ErrOptionsMismatch, want, got.Format())
}
