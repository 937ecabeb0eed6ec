package formstate

import "sync"

// Store holds the authoritative mapping from field name to [FieldRecord].
// All mutations go through the apply transition function; dispatches are
// serialized behind a mutex and swap in a fresh snapshot, so readers always
// see a complete, consistent view and never observe a record changing after
// the fact.
type Store struct {
	mu   sync.RWMutex
	data snapshot
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: snapshot{}}
}

func (s *Store) dispatch(a action) {
	s.mu.Lock()
	s.data = apply(s.data, a)
	s.mu.Unlock()
}

// current returns the live snapshot. Snapshots are immutable once published;
// callers may iterate freely but must not hand records out without cloning.
func (s *Store) current() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Add registers a field record. An existing record under the same name is
// overwritten wholesale.
func (s *Store) Add(f Field) {
	s.dispatch(addField{record: FieldRecord{
		Name:  f.Name,
		Label: f.Label,
		Value: f.Value,
		Rules: f.Rules,
	}})
}

// SetValue replaces the named field's value. Unknown names are a no-op.
func (s *Store) SetValue(name string, value any) {
	s.dispatch(updateValue{name: name, value: value})
}

// Remove deregisters the named field. Unknown names are a no-op.
func (s *Store) Remove(name string) {
	s.dispatch(removeField{name: name})
}

// Field returns a copy of the named field's record.
func (s *Store) Field(name string) (FieldRecord, bool) {
	rec, ok := s.current()[name]
	if !ok {
		return FieldRecord{}, false
	}
	return rec.clone(), true
}

// Value returns the named field's current value. The second return is false
// if the field is not registered.
func (s *Store) Value(name string) (any, bool) {
	rec, ok := s.current()[name]
	if !ok {
		return nil, false
	}
	return rec.Value, true
}

// Values returns every registered field's current value.
func (s *Store) Values() Values {
	data := s.current()
	values := make(Values, len(data))
	for name, rec := range data {
		values[name] = rec.Value
	}
	return values
}

// Len returns the number of registered fields.
func (s *Store) Len() int {
	return len(s.current())
}

// accessor returns the getFieldValue capability handed to rule generators.
// It is bound to the store, not to a snapshot, so generators always read the
// value current at resolution time.
func (s *Store) accessor() Accessor {
	return s.Value
}
