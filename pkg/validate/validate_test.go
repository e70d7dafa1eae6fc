package validate_test

import (
	"testing"

	"github.com/Astemirdum/locallibrary/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	type idParam struct {
		ID string `validate:"required,uuid"`
	}
	v := validate.NewCustomValidator()

	require.NoError(t, v.Validate(idParam{ID: "f7cdc58f-2caf-4b15-9727-f89dcc629b27"}))
	require.Error(t, v.Validate(idParam{ID: "507f1f77bcf86cd799439011"}))
	require.Error(t, v.Validate(idParam{}))
}
