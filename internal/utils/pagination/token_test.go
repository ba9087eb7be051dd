package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)
	id := "e3a1c9a2-6c0f-4f2f-9f6e-0d9f6f1b2c3d"

	token := EncodeCursor(createdAt, id)
	gotTime, gotID, err := DecodeCursor(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeCursor_BadBase64(t *testing.T) {
	_, _, err := DecodeCursor("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeCursor_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("no-separator-here"))
	_, _, err := DecodeCursor(token)
	assert.Error(t, err)
}

func TestDecodeCursor_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|some-id"))
	_, _, err := DecodeCursor(token)
	assert.Error(t, err)
}
