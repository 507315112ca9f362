package chart

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestSineWavePNG(t *testing.T) {
	encoded, err := SineWavePNG(3.5)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Greater(t, len(raw), len(pngMagic))
	assert.Equal(t, pngMagic, raw[:len(pngMagic)])
}

func TestSineWavePNGNegativeAmplitude(t *testing.T) {
	encoded, err := SineWavePNG(-2)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
}
