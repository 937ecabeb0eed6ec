package formstate

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"
)

func TestEngineAllValid(t *testing.T) {
	err := ozzoEngine{}.Validate(context.Background(),
		Descriptor{
			"name":  {validation.Required},
			"email": {validation.Required},
		},
		Values{"name": "Alice", "email": "alice@example.com"},
	)
	require.NoError(t, err)
}

func TestEngineCollectsAllViolations(t *testing.T) {
	err := ozzoEngine{}.Validate(context.Background(),
		Descriptor{"code": {validation.Required, validation.RuneLength(4, 4)}},
		Values{"code": ""},
	)

	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	// Required fails; RuneLength skips the empty value.
	require.Len(t, agg.FieldErrors("code"), 1)

	err = ozzoEngine{}.Validate(context.Background(),
		Descriptor{"code": {validation.RuneLength(4, 4), validation.In("good")}},
		Values{"code": "bad"},
	)
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.FieldErrors("code"), 2, "every violated rule is collected, not just the first")
}

func TestEngineErrorRendering(t *testing.T) {
	err := ozzoEngine{}.Validate(context.Background(),
		Descriptor{
			"b": {validation.Required},
			"a": {validation.Required},
		},
		Values{"a": "", "b": ""},
	)

	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	require.Equal(t, []string{"a: cannot be blank", "b: cannot be blank"}, agg.Messages())
	require.Equal(t, "a: cannot be blank; b: cannot be blank.", agg.Error())
	require.Nil(t, agg.FieldErrors("c"))
}

func TestEngineContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ozzoEngine{}.Validate(ctx,
		Descriptor{"a": {validation.Required}},
		Values{"a": ""},
	)
	require.ErrorIs(t, err, context.Canceled)
}
