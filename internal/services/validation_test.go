package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transferForm struct {
	Amount        float64 `validate:"required,gt=0"`
	AccountNumber string  `validate:"len=10"`
	AccountName   string  `validate:"required"`
}

func TestValidationHelper_ValidateStruct(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("valid struct", func(t *testing.T) {
		valid := transferForm{
			Amount:        25.00,
			AccountNumber: "1234567890",
			AccountName:   "Jane Doe",
		}
		assert.NoError(t, vh.ValidateStruct(&valid))
	})

	t.Run("reports every failing field", func(t *testing.T) {
		invalid := transferForm{
			Amount:        0,
			AccountNumber: "123",
		}

		err := vh.ValidateStruct(&invalid)
		require.Error(t, err)

		verrs, ok := err.(validator.ValidationErrors)
		require.True(t, ok)
		assert.Len(t, verrs, 3)
	})

	t.Run("errors follow field declaration order", func(t *testing.T) {
		invalid := transferForm{
			Amount:        5,
			AccountNumber: "123",
		}

		err := vh.ValidateStruct(&invalid)
		require.Error(t, err)

		verrs := err.(validator.ValidationErrors)
		require.Len(t, verrs, 2)
		assert.Equal(t, "AccountNumber", verrs[0].Field())
		assert.Equal(t, "AccountName", verrs[1].Field())
	})
}

func TestSendErrorResponse(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Transaction not found", response.Error)
		assert.Nil(t, response.Details)
	})

	t.Run("validation error carries per-field details", func(t *testing.T) {
		vh := NewValidationHelper()
		invalid := transferForm{AccountNumber: "123"}

		validationErr := vh.ValidateStruct(&invalid)
		require.Error(t, validationErr)

		w := httptest.NewRecorder()
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, validationErr)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Validation failed", response.Error)
		assert.Contains(t, response.Details, "Amount")
		assert.Contains(t, response.Details, "AccountNumber")
		assert.Contains(t, response.Details, "AccountName")
	})
}
