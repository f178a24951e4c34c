package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	at := time.Date(2026, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeDateBasedToken(at)
	assert.NotEmpty(t, token)

	decoded, err := DecodeDateBasedToken(token)
	require.NoError(t, err)
	assert.True(t, at.Equal(decoded))

	local := at.In(time.FixedZone("VET", -4*3600))
	decoded, err = DecodeDateBasedToken(EncodeDateBasedToken(local))
	require.NoError(t, err)
	assert.True(t, at.Equal(decoded))
}

func TestDecodeDateBasedTokenError(t *testing.T) {
	_, err := DecodeDateBasedToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeDateBasedToken("bm90YWRhdGU=") // "notadate"
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}

func TestCursor(t *testing.T) {
	c, err := Cursor("")
	require.NoError(t, err)
	assert.Nil(t, c)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c, err = Cursor(EncodeDateBasedToken(at))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, at.Equal(*c))

	_, err = Cursor("%%%")
	assert.Error(t, err)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 5, NormalizeLimit(5))
	assert.Equal(t, MaxLimit, NormalizeLimit(1000))
}

func TestPage(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []time.Time{base.Add(3 * time.Hour), base.Add(2 * time.Hour), base.Add(time.Hour)}
	identity := func(t time.Time) time.Time { return t }

	page, next := Page(items, 2, identity)
	assert.Len(t, page, 2)
	require.NotEmpty(t, next)
	cursor, err := DecodeDateBasedToken(next)
	require.NoError(t, err)
	assert.True(t, cursor.Equal(base.Add(2*time.Hour)))

	page, next = Page(items, 3, identity)
	assert.Len(t, page, 3)
	assert.Empty(t, next)
}
