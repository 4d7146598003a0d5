package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	first, err := Hash("pw1")
	require.NoError(t, err)
	second, err := Hash("pw1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, Verify("pw1", first))
	require.True(t, Verify("pw1", second))
}

func TestVerifyWrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := Hash("pw1")
	require.NoError(t, err)

	require.False(t, Verify("pw2", hash))
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	require.False(t, Verify("pw1", ""))
	require.False(t, Verify("pw1", "not-a-bcrypt-hash"))
}
