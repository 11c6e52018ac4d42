package pure_test

import (
	"testing"

	"github.com/on-the-ground/fossen_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInNamespace(t *testing.T) {
	root := map[string]any{"app": "not a map"}
	require.NoError(t, pure.StoreInNamespace(root, "app.widgets.grid", 42))
	require.NoError(t, pure.StoreInNamespace(root, "app.widgets.list", 7))

	assert.Equal(t, map[string]any{
		"app": map[string]any{
			"widgets": map[string]any{"grid": 42, "list": 7},
		},
	}, root)

	assert.True(t, pure.NamespaceExists(root, "app"))
	assert.True(t, pure.NamespaceExists(root, "app.widgets.grid"))
	assert.False(t, pure.NamespaceExists(root, "app.widgets.tree"))
	assert.False(t, pure.NamespaceExists(root, "app.widgets.grid.deeper"))
	assert.False(t, pure.NamespaceExists(nil, "app"))
}

func TestStoreInNamespace_Invalid(t *testing.T) {
	assert.ErrorIs(t, pure.StoreInNamespace(nil, "a", 1), pure.ErrInvalidNamespace)
	assert.ErrorIs(t, pure.StoreInNamespace(map[string]any{}, "", 1), pure.ErrInvalidNamespace)
	assert.ErrorIs(t, pure.StoreInNamespace(map[string]any{}, "a..b", 1), pure.ErrInvalidNamespace)
	assert.False(t, pure.NamespaceExists(map[string]any{"a": 1}, ""))
}
