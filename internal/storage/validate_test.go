package storage_test

import (
	"bytes"
	"testing"

	"studio-api/internal/storage"

	"github.com/stretchr/testify/require"
)

// minimal 1x1 PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
	0xDE, 0x00, 0x00, 0x00, 0x10, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x62, 0xFA, 0xCF, 0xC0, 0x00,
	0x08, 0x00, 0x00, 0xFF, 0xFF, 0x03, 0x09, 0x01,
	0x02, 0x58, 0xB6, 0xD5, 0x50, 0x00, 0x00, 0x00,
	0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60,
	0x82,
}

func TestValidate_AcceptsPNG(t *testing.T) {
	mime, err := storage.Validate("logo.png", pngBytes)
	require.NoError(t, err)
	require.Equal(t, "image/png", mime)
}

func TestValidate_RejectsBlockedExtension(t *testing.T) {
	_, err := storage.Validate("payload.exe", []byte{0x4D, 0x5A, 0x90})
	require.ErrorIs(t, err, storage.ErrExtensionBlocked)
}

func TestValidate_RejectsMimeMismatch(t *testing.T) {
	// png extension on a plain-text body
	_, err := storage.Validate("fake.png", []byte("just text, no png header"))
	require.ErrorIs(t, err, storage.ErrMimeMismatch)
}

func TestValidate_RejectsOversized(t *testing.T) {
	big := bytes.Repeat([]byte{0x00}, storage.MaxFileSize+1)
	_, err := storage.Validate("big.png", big)
	require.ErrorIs(t, err, storage.ErrFileTooLarge)
}

func TestValidate_RejectsScriptInSVG(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	_, err := storage.Validate("icon.svg", svg)
	require.ErrorIs(t, err, storage.ErrUnsafeContent)
}

func TestValidate_AcceptsCleanSVG(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><circle r="4"/></svg>`)
	mime, err := storage.Validate("icon.svg", svg)
	require.NoError(t, err)
	require.NotEmpty(t, mime)
}

func TestValidate_RejectsEventHandlerAttributes(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" onload="evil()"></svg>`)
	_, err := storage.Validate("icon.svg", svg)
	require.ErrorIs(t, err, storage.ErrUnsafeContent)
}
