// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/misopt/brkga"
)

// validate is built once; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("pow2", validatePow2)
	v.RegisterStructValidation(validateKeyBands, Intensify{})

	return v
}

// validatePow2 accepts zero (use the default) or a positive power of two.
func validatePow2(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n == 0 || (n > 0 && n&(n-1) == 0)
}

// validateKeyBands requires LowKey+Jitter <= HighKey and HighKey+Jitter <= 1,
// so every solution key outranks every other key.
func validateKeyBands(sl validator.StructLevel) {
	in := sl.Current().Interface().(Intensify)
	if in.LowKey+in.Jitter > in.HighKey {
		sl.ReportError(in.LowKey, "LowKey", "low_key", "keyband", "")
	}
	if in.HighKey+in.Jitter > 1 {
		sl.ReportError(in.HighKey, "HighKey", "high_key", "keyband", "")
	}
}

// Validate checks c. Errors wrap ErrInvalid and, for population plans,
// the matching brkga sentinel.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, len(ve))
			for i, fe := range ve {
				msgs[i] = fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}
			return fmt.Errorf("Validate: %w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("Validate: %w: %w", ErrInvalid, err)
	}

	plans := []struct {
		name string
		ga   GA
	}{{"brkga", c.BRKGA}, {"hybrid", c.Hybrid}}
	for _, p := range plans {
		if _, err := brkga.Plan(p.ga.PopulationSize, p.ga.EliteFraction, p.ga.MutantFraction); err != nil {
			return fmt.Errorf("Validate: %s: %w: %w", p.name, ErrInvalid, err)
		}
	}

	return nil
}
