// Command signup demonstrates a signup form driven by formstate: field
// registration on mount, blur validation, a cross-field confirm-password
// rule, and the submit flow.
//
// Run:
//
//	go run ./_example/signup
package main

import (
	"context"
	"encoding/json"
	"fmt"

	formstate "github.com/Gobd/formstate"
	"github.com/Gobd/formstate/is"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func main() {
	ctx := context.Background()
	form := formstate.New()

	// The rendering layer would register each field as it mounts.
	form.Register(formstate.Field{
		Name:  "email",
		Label: "Email address",
		Value: "",
		Rules: []formstate.Rule{
			formstate.Static(validation.Required),
			formstate.Static(is.Email),
		},
	})
	form.Register(formstate.Field{
		Name:  "password",
		Label: "Password",
		Rules: formstate.Statics(validation.Required, validation.RuneLength(8, 64)),
	})
	form.Register(formstate.Field{
		Name:  "confirm",
		Label: "Confirm password",
		Rules: []formstate.Rule{
			formstate.Static(validation.Required),
			formstate.MatchField("password", "passwords do not match"),
		},
	})

	// User types, then tabs away: blur triggers single-field validation.
	form.SetValue("email", "alice@example")
	_ = form.ValidateField(ctx, "email")
	rec, _ := form.Field("email")
	fmt.Printf("email after blur: valid=%v errors=%v\n", rec.Valid, rec.Errors)

	form.SetValue("email", "alice@example.com")
	form.SetValue("password", "hunter2hunter2")
	form.SetValue("confirm", "hunter2")

	// First submit fails on the confirm mismatch.
	_ = form.Submit(ctx, onValid, onInvalid)

	form.SetValue("confirm", "hunter2hunter2")
	_ = form.Submit(ctx, onValid, onInvalid)

	// Document the form's payload as an OpenAPI schema.
	ref, err := form.SchemaRef()
	if err != nil {
		panic(err)
	}
	b, _ := json.MarshalIndent(ref.Value, "", "  ")
	fmt.Println(string(b))
}

func onValid(values formstate.Values) {
	fmt.Println("signup accepted for", values["email"])
}

func onInvalid(_ formstate.Values, errs map[string][]formstate.FieldError) {
	for field, fieldErrs := range errs {
		for _, e := range fieldErrs {
			fmt.Printf("%s: %s\n", field, e.Message)
		}
	}
}
