package domain_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coretypes/pkg/domain"
	dErrors "coretypes/pkg/domain-errors"
)

const validUUID = "91a495f8-86a3-453a-aa10-1d50a45c95f9"

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"canonical v4", validUUID, true},
		{"uppercase v4", strings.ToUpper(validUUID), true},
		{"variant 8", "91a495f8-86a3-453a-8a10-1d50a45c95f9", true},
		{"variant b", "91a495f8-86a3-453a-ba10-1d50a45c95f9", true},
		{"wrong version nibble", "91a495f8-86a3-153a-aa10-1d50a45c95f9", false},
		{"wrong variant nibble", "91a495f8-86a3-453a-ca10-1d50a45c95f9", false},
		{"no hyphens", "91a495f886a3453aaa101d50a45c95f9", false},
		{"braced", "{" + validUUID + "}", false},
		{"urn form", "urn:uuid:" + validUUID, false},
		{"trailing newline", validUUID + "\n", false},
		{"non-hex", "91a495g8-86a3-453a-aa10-1d50a45c95f9", false},
		{"garbage", "-sd", false},
		{"nil uuid", uuid.Nil.String(), false},
		{"empty", "", false},
		{"nil", nil, false},
		{"uuid.UUID value", uuid.MustParse(validUUID), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsUUID(tt.input))
		})
	}
}

func TestAsUUID(t *testing.T) {
	t.Run("returns the input unchanged", func(t *testing.T) {
		upper := strings.ToUpper(validUUID)
		id, err := domain.AsUUID(upper)
		require.NoError(t, err)
		assert.Equal(t, domain.UUID(upper), id)
		assert.Equal(t, domain.NonEmptyString(upper), id.NonEmptyString())
	})

	t.Run("rejects with validation code", func(t *testing.T) {
		_, err := domain.AsUUID("91a495f8-86a3-153a-aa10-1d50a45c95f9")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "value 91a495f8-86a3-153a-aa10-1d50a45c95f9 of type string is not a UUID", err.Error())
	})
}

func TestNewUUID(t *testing.T) {
	seen := make(map[domain.UUID]bool)
	for range 100 {
		id := domain.NewUUID()
		require.True(t, domain.IsUUID(id), "generated %s", id)
		require.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}

func TestUUIDGenerator(t *testing.T) {
	t.Run("is deterministic for a fixed source", func(t *testing.T) {
		entropy := bytes.Repeat([]byte{0xff}, 16)
		id, err := domain.NewUUIDGenerator(bytes.NewReader(entropy)).New()
		require.NoError(t, err)
		assert.Equal(t, domain.UUID("ffffffff-ffff-4fff-bfff-ffffffffffff"), id)
		assert.True(t, domain.IsUUID(id))
	})

	t.Run("stamps version and variant on zero entropy", func(t *testing.T) {
		id, err := domain.NewUUIDGenerator(bytes.NewReader(make([]byte, 16))).New()
		require.NoError(t, err)
		assert.Equal(t, domain.UUID("00000000-0000-4000-8000-000000000000"), id)
	})

	t.Run("surfaces source failures as internal errors", func(t *testing.T) {
		cause := errors.New("entropy exhausted")
		_, err := domain.NewUUIDGenerator(iotest.ErrReader(cause)).New()
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("nil source falls back to crypto/rand", func(t *testing.T) {
		id, err := domain.NewUUIDGenerator(nil).New()
		require.NoError(t, err)
		assert.True(t, domain.IsUUID(id))
	})
}
