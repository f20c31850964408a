// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qstep/compare"
)

// Scenario is one problem instance.
type Scenario struct {
	Name        string          `yaml:"name" validate:"required"`
	Description string          `yaml:"description,omitempty"`
	Problem     compare.Problem `yaml:"problem" validate:"required,oneof=search linear path factor coin"`

	Search *SearchInput `yaml:"search,omitempty" validate:"required_if=Problem search"`
	Linear *LinearInput `yaml:"linear,omitempty" validate:"required_if=Problem linear"`
	Graph  *GraphInput  `yaml:"graph,omitempty" validate:"required_if=Problem path"`
	Factor *FactorInput `yaml:"factor,omitempty" validate:"required_if=Problem factor"`
	Coin   *CoinInput   `yaml:"coin,omitempty" validate:"required_if=Problem coin"`
}

// SearchInput is a value sequence and a target.
type SearchInput struct {
	Values []string `yaml:"values" validate:"required,min=1"`
	Target string   `yaml:"target"`
}

// LinearInput is a square system M·x = b.
type LinearInput struct {
	Matrix [][]float64 `yaml:"matrix" validate:"required,min=2,max=4"`
	Vector []float64   `yaml:"vector" validate:"required"`
	// Jacobi switches HHL to Jacobi eigenvalue estimation.
	Jacobi bool `yaml:"jacobi,omitempty"`
}

// GraphInput is a node/edge list with endpoints. Edges are directed unless
// Undirected is set.
type GraphInput struct {
	Nodes      []string   `yaml:"nodes" validate:"required,min=1,dive,required"`
	Edges      [][]string `yaml:"edges" validate:"dive,len=2,dive,required"`
	Start      string     `yaml:"start" validate:"required"`
	End        string     `yaml:"end" validate:"required"`
	Undirected bool       `yaml:"undirected,omitempty"`
}

// FactorInput is the integer to factor.
type FactorInput struct {
	N int `yaml:"n" validate:"gt=1"`
}

// CoinInput configures both coin machines.
type CoinInput struct {
	Trials int   `yaml:"trials" validate:"min=1,max=1000"`
	Seed   int64 `yaml:"seed,omitempty"`
}

// ErrInvalid wraps every decode or validation failure.
var ErrInvalid = errors.New("scenario: invalid")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes one scenario from r and validates it.
func Parse(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the struct tags and reports each failing field.
func (s *Scenario) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Scenario.")
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s fails %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s fails %s", field, fe.Tag())
	}
}
