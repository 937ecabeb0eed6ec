// Package formstate tracks form field state and orchestrates validation.
//
// A [Form] holds one record per registered field: its current value, its
// rules, and its last validation result. Rules are ozzo-validation rules
// wrapped as either [Static] descriptors or [Generate] closures; generator
// closures are re-resolved against the live field values immediately before
// every validation pass, so one field's rule can depend on another field's
// current value:
//
//	form := formstate.New()
//	form.Register(formstate.Field{
//	    Name:  "password",
//	    Rules: formstate.Statics(validation.Required, validation.Length(8, 64)),
//	})
//	form.Register(formstate.Field{
//	    Name:  "confirm",
//	    Rules: []formstate.Rule{
//	        formstate.Static(validation.Required),
//	        formstate.MatchField("password", "passwords do not match"),
//	    },
//	})
//
// Validate one field on a blur-equivalent event with [Form.ValidateField],
// or the whole form atomically with [Form.ValidateAll]. Both write results
// back into the field records; validation rejections never surface as
// errors to the caller. [Form.Submit] bridges a submission event to exactly
// one of two outcome callbacks.
//
// Sub-packages:
//   - is – common string format validation rules
package formstate
