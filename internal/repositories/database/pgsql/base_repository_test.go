package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))

	got := nullIfEmpty("user-1")
	require.NotNil(t, got)
	assert.Equal(t, "user-1", *got)
}
