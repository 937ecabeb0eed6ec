package formstate

import (
	"context"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// Descriptor is the engine's required input shape: field name to
	// resolved static rule list.
	Descriptor map[string][]validation.Rule

	// Values maps field names to their current values. It is paired with
	// a Descriptor keyed by the same names when invoking the engine.
	Values map[string]any
)

// Engine executes a descriptor against a value map. A nil return means every
// field passed. A validation rejection is reported as *[AggregateError];
// anything else is treated as an unexpected fault and aborts the pass.
type Engine interface {
	Validate(ctx context.Context, desc Descriptor, values Values) error
}

// AggregateError is the engine's failure result: the per-field mapping of
// rule violations. Entries exist only for fields that actually failed.
type AggregateError struct {
	Fields map[string][]FieldError
}

// Error joins every violation as "field: message; ..." with fields in name
// order, matching ozzo's Errors rendering.
func (e *AggregateError) Error() string {
	var b strings.Builder
	for i, msg := range e.Messages() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(msg)
	}
	b.WriteString(".")
	return b.String()
}

// Messages returns every violated-rule message prefixed with its field name,
// fields in name order, violations in rule order within a field.
func (e *AggregateError) Messages() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var msgs []string
	for _, name := range names {
		for _, fe := range e.Fields[name] {
			msgs = append(msgs, name+": "+fe.Message)
		}
	}
	return msgs
}

// FieldErrors returns the named field's violations, nil if it passed.
func (e *AggregateError) FieldErrors(name string) []FieldError {
	return e.Fields[name]
}

// ozzoEngine is the default Engine. It applies every rule of every
// descriptor field to the matching value and collects all violations, so a
// field's error list is complete rather than first-failure-only.
type ozzoEngine struct{}

func (ozzoEngine) Validate(ctx context.Context, desc Descriptor, values Values) error {
	names := make([]string, 0, len(desc))
	for name := range desc {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := map[string][]FieldError{}
	for _, name := range names {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		value := values[name]
		for _, rule := range desc[name] {
			if err := rule.Validate(value); err != nil {
				fields[name] = append(fields[name], FieldError{Field: name, Message: err.Error()})
			}
		}
	}
	if len(fields) > 0 {
		return &AggregateError{Fields: fields}
	}
	return nil
}
