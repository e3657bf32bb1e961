package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid file headers for content sniffing.
var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	gifHeader  = []byte("GIF89a")
)

func TestValidateSniffsContent(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantExt string
		wantErr error
	}{
		{"png", pngHeader, ".png", nil},
		{"jpeg", jpegHeader, ".jpg", nil},
		{"gif", gifHeader, ".gif", nil},
		{"plain text", []byte("hello world"), "", ErrUnsupportedType},
		{"pdf", []byte("%PDF-1.4"), "", ErrUnsupportedType},
		{"empty", nil, "", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := Validate(tt.data, MaxProductImageSize)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestValidateEnforcesSizeCap(t *testing.T) {
	oversized := append(append([]byte(nil), pngHeader...), bytes.Repeat([]byte{0}, MaxLogoSize)...)

	_, err := Validate(oversized, MaxLogoSize)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = Validate(oversized, MaxProductImageSize)
	assert.NoError(t, err, "same payload fits under the larger product cap")
}

func TestSaveProductImageReturnsPublicURL(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	url, err := store.SaveProductImage(pngHeader)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/products/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
}

func TestSaveLogoRejectsOversizedUpload(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	oversized := append(append([]byte(nil), jpegHeader...), bytes.Repeat([]byte{0}, MaxLogoSize)...)
	_, err = store.SaveLogo(oversized)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
