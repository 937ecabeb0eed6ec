package formstate

// FieldError is a single rule violation for one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Field describes a field at registration time. The rendering layer supplies
// one per mounted element.
type Field struct {
	Name  string
	Label string
	Value any
	Rules []Rule
}

// FieldRecord is the stored state of one registered field. Valid defaults to
// true until the first validation result is written.
type FieldRecord struct {
	Name   string
	Label  string
	Value  any
	Rules  []Rule
	Valid  bool
	Errors []FieldError

	// generation increments on every value update; validation results
	// carry the generation they were computed against and are dropped
	// if a newer value has landed in the meantime.
	generation uint64
}

// clone returns a record whose Errors slice does not alias the original.
// Rules are set once at registration and never mutated, so they are shared.
func (r FieldRecord) clone() FieldRecord {
	if len(r.Errors) > 0 {
		errs := make([]FieldError, len(r.Errors))
		copy(errs, r.Errors)
		r.Errors = errs
	}
	return r
}
