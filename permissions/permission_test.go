package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/permissions"
)

func TestGet_LoadsEmbeddedEndpoints(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions_UnknownRouteIsEmpty(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	got := data.FindPermissions("/v1/does-not-exist", "GET")
	assert.Empty(t, got.Path)
	assert.False(t, got.Skip)
}

func TestAllows(t *testing.T) {
	restricted := permissions.Permission{Permissions: []string{"admin"}}
	assert.True(t, restricted.Allows("admin"))
	assert.False(t, restricted.Allows("staff"))

	open := permissions.Permission{}
	assert.True(t, open.Allows("staff"))
	assert.True(t, open.Allows(""))
}
