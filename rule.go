package formstate

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// Accessor is the single capability handed to rule generators: it
	// returns the named field's current value, or false if the field is
	// not registered.
	Accessor func(name string) (any, bool)

	// GeneratorFunc produces a static rule from the current field values.
	// It must be a pure function of the accessor's results at call time;
	// the engine does not track which fields it reads.
	GeneratorFunc func(get Accessor) validation.Rule

	// Rule is one entry in a field's rule set: either a static
	// ozzo-validation rule wrapped by [Static], or a generator wrapped by
	// [Generate] that is re-evaluated immediately before each validation
	// pass so it can encode cross-field constraints.
	Rule interface {
		resolve(get Accessor) validation.Rule
	}
)

type staticRule struct {
	rule validation.Rule
}

// Static wraps a plain ozzo-validation rule; it is passed through to the
// engine as-is.
func Static(rule validation.Rule) Rule {
	return staticRule{rule: rule}
}

// Statics wraps each rule with [Static]. Convenience for the common
// all-static case.
func Statics(rules ...validation.Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Static(r)
	}
	return out
}

func (r staticRule) resolve(Accessor) validation.Rule {
	return r.rule
}

type generatorRule struct {
	fn GeneratorFunc
}

// Generate wraps a rule generator.
func Generate(fn GeneratorFunc) Rule {
	return generatorRule{fn: fn}
}

func (r generatorRule) resolve(get Accessor) validation.Rule {
	return r.fn(get)
}

// resolveRules turns a field's declared rule set into the static rule list
// handed to the engine. Resolution is recomputed on every validation call so
// generators see the latest values; nothing is cached.
func resolveRules(rules []Rule, get Accessor) []validation.Rule {
	if len(rules) == 0 {
		return nil
	}
	resolved := make([]validation.Rule, len(rules))
	for i, r := range rules {
		resolved[i] = r.resolve(get)
	}
	return resolved
}

// MatchField returns a generator rule requiring the value to equal the named
// field's value at validation time. The canonical use is a confirm-password
// field. Empty values are skipped; pair with validation.Required to forbid
// them.
func MatchField(name, message string) Rule {
	if message == "" {
		message = "must match " + name
	}
	return Generate(func(get Accessor) validation.Rule {
		want, _ := get(name)
		return validation.By(func(value any) error {
			value, isNil := validation.Indirect(value)
			if isNil || validation.IsEmpty(value) {
				return nil
			}
			if !reflect.DeepEqual(value, want) {
				return validation.NewError("validation_match_field", message)
			}
			return nil
		})
	})
}
