package qr

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_DataURL(t *testing.T) {
	g := NewGenerator()

	dataURL, err := g.DataURL("http://test.com:8080/abc12345")
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix), "unexpected prefix: %s", dataURL[:30])

	png, decodeErr := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, decodeErr)
	assert.NotEmpty(t, png)
	// PNG сигнатура
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerator_DataURL_TooLong(t *testing.T) {
	g := NewGenerator()

	// превышает емкость QR-кода
	_, err := g.DataURL(strings.Repeat("a", 5000))
	require.Error(t, err)
}
