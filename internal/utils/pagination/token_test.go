package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	transactionDate := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 8, 15, 9, 30, 12, 345678000, time.UTC)

	token := EncodeToken(transactionDate, createdAt)
	require.NotEmpty(t, token)

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, transactionDate.Equal(decodedDate))
	assert.True(t, createdAt.Equal(decodedCreatedAt))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64-!!!")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2025-08-15T00:00:00Z"))

	_, _, err := DecodeToken(token)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")
}

func TestDecodeToken_BadTransactionDate(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|2025-08-15T09:30:00Z"))

	_, _, err := DecodeToken(token)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction date parse")
}

func TestDecodeToken_BadCreatedAt(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2025-08-15T00:00:00Z|later"))

	_, _, err := DecodeToken(token)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
