package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2a$12$"), "digest %q should carry the configured cost", digest)

	assert.True(t, hasher.Verify("secret", digest))
	assert.False(t, hasher.Verify("wrong", digest))
}
