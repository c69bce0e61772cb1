package auth_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospors/gospors/internal/auth"
)

func TestDevProvider(t *testing.T) {
	_, err := auth.NewDevProvider("No Email", "")
	assert.Error(t, err)

	p, err := auth.NewDevProvider("Dev Athlete", "dev@gospors.local")
	require.NoError(t, err)
	assert.Equal(t, "dev", p.Name())
	assert.Empty(t, p.EndSessionURL("/"))

	u, err := url.Parse(p.AuthCodeURL("abc", "nonce"))
	require.NoError(t, err)
	assert.Equal(t, "/auth/callback", u.Path)
	assert.Equal(t, "abc", u.Query().Get("state"))

	id, err := p.Exchange(context.Background(), "dev", "nonce")
	require.NoError(t, err)
	require.NoError(t, id.Validate())
	assert.Equal(t, "Dev Athlete", id.FullName)
	assert.Equal(t, "dev@gospors.local", id.Subject)
}
