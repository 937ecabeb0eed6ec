package formstate

import (
	"context"
	"errors"
	"sync"
)

// Form binds a field store to a validation engine and exposes the two
// validation modes plus the submission flow.
type Form struct {
	store  *Store
	engine Engine

	mu         sync.RWMutex
	valid      bool
	submitting bool
	errors     map[string][]FieldError
}

// Option configures a Form.
type Option func(*Form)

// WithEngine replaces the default ozzo-backed engine.
func WithEngine(e Engine) Option {
	return func(f *Form) {
		f.engine = e
	}
}

// New returns a Form with an empty store.
func New(opts ...Option) *Form {
	f := &Form{
		store:  NewStore(),
		engine: ozzoEngine{},
		valid:  true,
		errors: map[string][]FieldError{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Store exposes the underlying field store for direct read access.
func (f *Form) Store() *Store {
	return f.store
}

// Register adds a field on mount. Registering the same name again replaces
// the record wholesale.
func (f *Form) Register(field Field) {
	f.store.Add(field)
}

// Deregister removes a field when its owning element unmounts, so orphaned
// fields do not linger in aggregate validation.
func (f *Form) Deregister(name string) {
	f.store.Remove(name)
}

// SetValue forwards a user input event to the store.
func (f *Form) SetValue(name string, value any) {
	f.store.SetValue(name, value)
}

// Field returns a copy of the named field's record for rendering.
func (f *Form) Field(name string) (FieldRecord, bool) {
	return f.store.Field(name)
}

// Values returns every registered field's current value.
func (f *Form) Values() Values {
	return f.store.Values()
}

// Valid reports whether the most recent aggregate validation passed. True
// before any aggregate pass has run.
func (f *Form) Valid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.valid
}

// Submitting reports whether an aggregate validation triggered by submission
// is in flight. It is advisory only; nothing stops a second concurrent
// submission, callers that care must check it themselves.
func (f *Form) Submitting() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.submitting
}

// Errors returns the per-field error mapping as of the last aggregate
// validation.
func (f *Form) Errors() map[string][]FieldError {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string][]FieldError, len(f.errors))
	for name, errs := range f.errors {
		out[name] = append([]FieldError(nil), errs...)
	}
	return out
}

// ValidateField validates exactly one field in isolation and writes the
// outcome into the store. Rule rejections are absorbed into the stored
// result and never returned; the returned error is non-nil only for an
// unexpected engine fault (for example context cancellation), in which case
// no result is stored. Unknown names are a no-op.
//
// Cross-field generator rules resolve against the whole store, so they work
// here the same as in aggregate validation. The result carries the field's
// generation at read time; if a newer value lands while the engine call is
// in flight, the stale result is dropped instead of overwriting it.
func (f *Form) ValidateField(ctx context.Context, name string) error {
	rec, ok := f.store.current()[name]
	if !ok {
		return nil
	}
	gen := rec.generation
	resolved := resolveRules(rec.Rules, f.store.accessor())

	err := f.engine.Validate(ctx,
		Descriptor{name: resolved},
		Values{name: rec.Value},
	)
	if err == nil {
		f.store.dispatch(updateValidateResult{name: name, generation: gen, valid: true, errors: nil})
		return nil
	}
	var agg *AggregateError
	if !errors.As(err, &agg) {
		return err
	}
	f.store.dispatch(updateValidateResult{
		name:       name,
		generation: gen,
		valid:      false,
		errors:     agg.FieldErrors(name),
	})
	return nil
}

// Result is the consolidated outcome of an aggregate validation pass.
type Result struct {
	Valid  bool
	Errors map[string][]FieldError
	Values Values
}

// ValidateAll validates every registered field in one engine pass and
// redistributes the outcome onto the individual field records: fields with
// an error entry become invalid, fields that declared rules but have no
// entry are marked valid (clearing any stale failure), fields with no rules
// are left untouched. The submitting flag is set for the duration of the
// engine call and cleared before returning.
//
// The returned error is non-nil only for an unexpected engine fault; a
// validation rejection is reported through Result.Valid and Result.Errors.
func (f *Form) ValidateAll(ctx context.Context) (Result, error) {
	data := f.store.current()
	get := f.store.accessor()

	values := make(Values, len(data))
	desc := make(Descriptor, len(data))
	gens := make(map[string]uint64, len(data))
	for name, rec := range data {
		values[name] = rec.Value
		gens[name] = rec.generation
		if len(rec.Rules) > 0 {
			desc[name] = resolveRules(rec.Rules, get)
		}
	}

	f.setSubmitting(true)
	err := f.engine.Validate(ctx, desc, values)
	f.setSubmitting(false)

	if err == nil {
		for name := range desc {
			f.store.dispatch(updateValidateResult{name: name, generation: gens[name], valid: true, errors: nil})
		}
		res := Result{Valid: true, Errors: map[string][]FieldError{}, Values: values}
		f.setOutcome(res)
		return res, nil
	}

	var agg *AggregateError
	if !errors.As(err, &agg) {
		return Result{}, err
	}

	for name := range data {
		if errs, failed := agg.Fields[name]; failed {
			f.store.dispatch(updateValidateResult{name: name, generation: gens[name], valid: false, errors: errs})
		} else if _, ruled := desc[name]; ruled {
			// Ruled but absent from the error mapping means it passed.
			f.store.dispatch(updateValidateResult{name: name, generation: gens[name], valid: true, errors: nil})
		}
	}
	res := Result{Valid: false, Errors: agg.Fields, Values: values}
	f.setOutcome(res)
	return res, nil
}

// Submit runs an aggregate validation pass and invokes exactly one of the
// two callbacks: onValid with the values if every field passed, otherwise
// onInvalid with the values and the per-field error mapping. Nil callbacks
// are skipped. The returned error is non-nil only for an unexpected engine
// fault, in which case neither callback runs.
//
// Submit does not guard against a second submission while the first is in
// flight; check [Form.Submitting] first if that matters.
func (f *Form) Submit(ctx context.Context, onValid func(Values), onInvalid func(Values, map[string][]FieldError)) error {
	res, err := f.ValidateAll(ctx)
	if err != nil {
		return err
	}
	if res.Valid {
		if onValid != nil {
			onValid(res.Values)
		}
		return nil
	}
	if onInvalid != nil {
		onInvalid(res.Values, res.Errors)
	}
	return nil
}

func (f *Form) setSubmitting(v bool) {
	f.mu.Lock()
	f.submitting = v
	f.mu.Unlock()
}

func (f *Form) setOutcome(res Result) {
	f.mu.Lock()
	f.valid = res.Valid
	f.errors = res.Errors
	f.mu.Unlock()
}
