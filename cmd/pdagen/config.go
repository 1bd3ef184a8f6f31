package main

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/dhamidi/pdagen/automaton"
	"github.com/dhamidi/pdagen/format"
	"github.com/dhamidi/pdagen/grammar"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("encoder", encoderValidator); err != nil {
		panic(err)
	}
}

// encoderValidator accepts the names of registered output formats.
func encoderValidator(fl validator.FieldLevel) bool {
	_, err := format.NewEncoder(fl.Field().String(), io.Discard)
	return err == nil
}

// config holds the command line settings.
type config struct {
	Format  string `validate:"required,encoder"`
	Policy  string `validate:"required,oneof=strict permissive"`
	State   string `validate:"required,alphanumunicode"`
	Start   string
	Output  string
	Verbose int
}

func defaultConfig() *config {
	return &config{
		Format: "text",
		Policy: automaton.Permissive.String(),
		State:  automaton.DefaultStartState,
	}
}

func (c *config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid flags")
	}
	return nil
}

func (c *config) loadOptions() []grammar.LoadOption {
	var opts []grammar.LoadOption
	if c.Start != "" {
		opts = append(opts, grammar.WithStart(c.Start))
	}
	return opts
}

func (c *config) buildOptions() ([]automaton.Option, error) {
	policy, err := automaton.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	return []automaton.Option{
		automaton.WithPolicy(policy),
		automaton.WithStartState(c.State),
	}, nil
}
