package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData("Product created successfully", map[string]any{"id": "42"})

	assert.True(t, resp.Success)
	assert.Equal(t, "Product created successfully", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Errors)
}

func TestError_Serialization(t *testing.T) {
	raw, err := json.Marshal(Error("Product not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Product not found"}`, string(raw))
}

func TestValidationError(t *testing.T) {
	type req struct {
		Barcode string `validate:"required"`
		Price   float64 `validate:"gte=0"`
	}

	v := validator.New()
	err := v.Struct(req{Price: -1})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)
	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors[0], "Barcode")
}
