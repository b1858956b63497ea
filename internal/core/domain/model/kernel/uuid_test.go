package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
}

func TestNewUUID_Unique(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	assert.False(t, id1.IsEqual(id2))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		original := kernel.NewUUID()
		parsed, err := kernel.UUIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, original.IsEqual(id))
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("nil uuid is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID
		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})
}
