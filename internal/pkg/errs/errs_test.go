package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("order", 123)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, 123, err.ID)
	assert.Equal(t, "object not found: order 123", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("name", "Pizza")

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, "Pizza", err.Value)
		assert.Equal(t, "object already exists: name is Pizza", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("name", "hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestReferenceIsInvalidError(t *testing.T) {
	err := errs.NewReferenceIsInvalidError("items", 4, 7)

	assert.Equal(t, "reference is invalid: items [4, 7]", err.Error())
	require.ErrorIs(t, err, errs.ErrReferenceIsInvalid)
	assert.False(t, errs.IsValidation(err))
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsInvalid}, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-1 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("price", cause)

		assert.Equal(t, "value is invalid: price (cause: -1 is not greater than 0)", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsInvalid, cause}, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, cause)
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("name")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("price")))
	assert.True(t, errs.IsValidation(errors.Join(
		errors.New("unrelated"),
		errs.NewValueIsInvalidError("category"),
	)))
	assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("order", 1)))
	assert.False(t, errs.IsValidation(nil))
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "reference is invalid", errs.ErrReferenceIsInvalid.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
