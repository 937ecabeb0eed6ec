package formstate

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Describer is optionally implemented by static rules that contribute
// constraints to the exported form schema, e.g. the format rules in the is
// subpackage.
type Describer interface {
	DescribeSchema(schema *openapi3.Schema) error
}

// SchemaRef generates an OpenAPI object schema describing the form: one
// property per registered field, typed from the field's current value,
// titled from its label, with Required populated from the field's rules.
// Rules implementing [Describer] contribute formats and descriptions. Use it
// to document the payload a form submits.
func (f *Form) SchemaRef() (*openapi3.SchemaRef, error) {
	data := f.store.current()
	get := f.store.accessor()

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	schema := openapi3.NewObjectSchema()
	schema.Properties = openapi3.Schemas{}

	for _, name := range names {
		rec := data[name]
		ref, err := fieldSchema(rec.Value)
		if err != nil {
			return nil, err
		}
		if rec.Label != "" {
			ref.Value.Title = rec.Label
		}
		for _, rule := range resolveRules(rec.Rules, get) {
			if _, ok := rule.(validation.RequiredRule); ok {
				schema.Required = append(schema.Required, name)
			}
			if d, ok := rule.(Describer); ok {
				if err := d.DescribeSchema(ref.Value); err != nil {
					return nil, err
				}
			}
		}
		schema.Properties[name] = ref
	}

	return &openapi3.SchemaRef{Value: schema}, nil
}

// fieldSchema derives a property schema from the field's current value.
// Unset values get an untyped schema; the value is opaque to the engine, so
// the type is only as good as what the rendering layer has put in so far.
func fieldSchema(value any) (*openapi3.SchemaRef, error) {
	if value == nil {
		return &openapi3.SchemaRef{Value: openapi3.NewSchema()}, nil
	}
	return openapi3gen.NewSchemaRefForValue(value, nil)
}
