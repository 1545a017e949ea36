package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/degulab/exalge"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// rulesConfig is the YAML form of exalge.KeyRules. Absent fields keep the value of exalge.DefaultRules.
//
//	forbidden: "<>-,^%&?|@'\""
//	forbid_space: true
//	hat_aliases: ["^", "bar"]
//	no_hat_aliases: ["plain"]
//	strict_hat: true
type rulesConfig struct {
	Forbidden    *string  `yaml:"forbidden" validate:"omitnil,max=64"`
	ForbidSpace  *bool    `yaml:"forbid_space"`
	HatAliases   []string `yaml:"hat_aliases" validate:"max=16,dive,required,nospace,max=32"`
	NoHatAliases []string `yaml:"no_hat_aliases" validate:"max=16,dive,required,nospace,max=32"`
	StrictHat    *bool    `yaml:"strict_hat"`
}

// configValidate validates configuration files.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	if err := configValidate.RegisterValidation("nospace", validateNoSpace); err != nil {
		panic(fmt.Sprintf("cannot register the nospace validation: %v", err))
	}
}

// validateNoSpace reports whether a string field has no white space.
func validateNoSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

// LoadRules reads key rules from a YAML file.
func LoadRules(path string) (exalge.KeyRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return exalge.KeyRules{}, fmt.Errorf("could not read rules file: %w", err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return exalge.KeyRules{}, fmt.Errorf("invalid rules file %q: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes key rules in YAML. Unknown fields are errors, an empty document is DefaultRules.
func ParseRules(data []byte) (exalge.KeyRules, error) {
	var c rulesConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return exalge.KeyRules{}, err
	}
	if err := configValidate.Struct(c); err != nil {
		return exalge.KeyRules{}, err
	}

	rules := c.keyRules()
	if err := rules.Validate(); err != nil {
		return exalge.KeyRules{}, err
	}
	return rules, nil
}

func (c rulesConfig) keyRules() exalge.KeyRules {
	rules := exalge.DefaultRules()
	if c.Forbidden != nil {
		rules.Forbidden = *c.Forbidden
	}
	if c.ForbidSpace != nil {
		rules.ForbidSpace = *c.ForbidSpace
	}
	if c.HatAliases != nil {
		rules.HatAliases = c.HatAliases
	}
	if c.NoHatAliases != nil {
		rules.NoHatAliases = c.NoHatAliases
	}
	if c.StrictHat != nil {
		rules.StrictHat = *c.StrictHat
	}
	return rules
}
