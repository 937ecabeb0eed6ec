package formstate

// snapshot is one immutable generation of the store's contents. Transitions
// never modify a snapshot in place; apply always returns a fresh map.
type snapshot map[string]FieldRecord

// action is the tagged variant of legal store mutations. Every state change
// is funneled through apply so the transition function stays total and
// side-effect-free.
type action interface {
	isAction()
}

// addField registers a field. Re-registering an existing name overwrites it
// wholesale (last writer wins): registration is idempotent per mount.
type addField struct {
	record FieldRecord
}

// updateValue replaces a field's value, leaving rules and the last
// validation result untouched. Unknown names are ignored.
type updateValue struct {
	name  string
	value any
}

// updateValidateResult writes a validation outcome. It carries the
// generation the validation read the value at; the reducer drops results
// computed against a value that has since been replaced. Unknown names are
// ignored.
type updateValidateResult struct {
	name       string
	generation uint64
	valid      bool
	errors     []FieldError
}

// removeField deregisters a field when its owning element unmounts.
// Unknown names are ignored.
type removeField struct {
	name string
}

func (addField) isAction()             {}
func (updateValue) isAction()          {}
func (updateValidateResult) isAction() {}
func (removeField) isAction()          {}

// apply is the pure transition function over snapshots. It returns its input
// unchanged for no-op actions, and a copy-on-write successor otherwise.
func apply(s snapshot, a action) snapshot {
	switch a := a.(type) {
	case addField:
		next := s.fork()
		rec := a.record.clone()
		rec.Valid = true
		rec.generation = 0
		if prev, ok := s[rec.Name]; ok {
			rec.generation = prev.generation + 1
		}
		next[rec.Name] = rec
		return next

	case updateValue:
		rec, ok := s[a.name]
		if !ok {
			return s
		}
		next := s.fork()
		rec.Value = a.value
		rec.generation++
		next[a.name] = rec
		return next

	case updateValidateResult:
		rec, ok := s[a.name]
		if !ok {
			return s
		}
		if rec.generation != a.generation {
			// Stale result from a validation that started before a
			// newer edit; the newer value will be validated on its
			// own trigger.
			return s
		}
		next := s.fork()
		rec.Valid = a.valid
		rec.Errors = a.errors
		next[a.name] = rec
		return next

	case removeField:
		if _, ok := s[a.name]; !ok {
			return s
		}
		next := s.fork()
		delete(next, a.name)
		return next
	}
	return s
}

func (s snapshot) fork() snapshot {
	next := make(snapshot, len(s)+1)
	for name, rec := range s {
		next[name] = rec
	}
	return next
}
