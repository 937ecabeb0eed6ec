// Package is provides ready-made static rules for common string formats.
// Each rule skips empty values (pair with validation.Required to forbid
// them) and contributes its format to exported form schemas.
package is

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Email validates that the value is an email address.
	Email = formatRule{
		validation.NewStringRuleWithError(govalidator.IsEmail,
			validation.NewError("validation_is_email", "must be a valid email address")),
		"email",
	}

	// URL validates that the value is a URL.
	URL = formatRule{
		validation.NewStringRuleWithError(govalidator.IsURL,
			validation.NewError("validation_is_url", "must be a valid URL")),
		"uri",
	}

	// UUID validates that the value is a UUID in canonical form.
	UUID = formatRule{
		validation.NewStringRuleWithError(govalidator.IsUUID,
			validation.NewError("validation_is_uuid", "must be a valid UUID")),
		"uuid",
	}

	// Digit validates that the value contains only digits.
	Digit = formatRule{
		validation.NewStringRuleWithError(govalidator.IsNumeric,
			validation.NewError("validation_is_digit", "must contain digits only")),
		"",
	}

	// Alphanumeric validates that the value contains only letters and digits.
	Alphanumeric = formatRule{
		validation.NewStringRuleWithError(govalidator.IsAlphanumeric,
			validation.NewError("validation_is_alphanumeric", "must contain letters and digits only")),
		"",
	}
)

type formatRule struct {
	validation.Rule
	format string
}

// DescribeSchema sets the OpenAPI format for the rule, if it has one.
func (r formatRule) DescribeSchema(schema *openapi3.Schema) error {
	if r.format != "" {
		schema.Format = r.format
	}
	return nil
}
