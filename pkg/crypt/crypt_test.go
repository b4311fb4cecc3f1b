package crypt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/forno/pkg/crypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := crypt.HashPassword("trattoria")
	require.NoError(t, err)
	assert.NotEqual(t, "trattoria", hash)

	assert.True(t, crypt.CheckPassword(hash, "trattoria"))
	assert.False(t, crypt.CheckPassword(hash, "osteria"))
}

func TestVerifyOverridePlain(t *testing.T) {
	t.Setenv("ADMIN_OVERRIDE", "skeleton-key")
	t.Setenv("ADMIN_OVERRIDE_HASH", "")

	assert.True(t, crypt.VerifyOverride("skeleton-key"))
	assert.False(t, crypt.VerifyOverride("wrong"))
	assert.False(t, crypt.VerifyOverride(""))
}

func TestVerifyOverrideHashWinsOverPlain(t *testing.T) {
	hash, err := crypt.HashPassword("hashed-key")
	require.NoError(t, err)

	t.Setenv("ADMIN_OVERRIDE", "plain-key")
	t.Setenv("ADMIN_OVERRIDE_HASH", hash)

	assert.True(t, crypt.VerifyOverride("hashed-key"))
	assert.False(t, crypt.VerifyOverride("plain-key"))
}

func TestVerifyOverrideUnconfigured(t *testing.T) {
	t.Setenv("ADMIN_OVERRIDE", "")
	t.Setenv("ADMIN_OVERRIDE_HASH", "")

	assert.False(t, crypt.VerifyOverride("anything"))
}
