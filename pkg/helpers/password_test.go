package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw1")
	require.NoError(t, err)
	h2, err := HashPassword("pw1")
	require.NoError(t, err)

	require.NotEqual(t, "pw1", h1)
	require.NotEqual(t, "pw1", h2)
	// salted: same plaintext, different digests
	require.NotEqual(t, h1, h2)

	ok, err := CheckPassword(h1, "pw1")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = CheckPassword(h2, "pw1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct")
	require.NoError(t, err)

	ok, err := CheckPassword(h, "wrong")
	require.NoError(t, err, "a genuine mismatch is not an internal failure")
	require.False(t, ok)
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	ok, err := CheckPassword("not-a-bcrypt-digest", "anything")
	require.Error(t, err, "malformed digests must be distinguishable from mismatches")
	require.False(t, ok)
}
