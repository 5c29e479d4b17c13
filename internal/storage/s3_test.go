package storage_test

import (
	"strings"
	"testing"

	"studio-api/internal/storage"

	"github.com/stretchr/testify/require"
)

func TestMediaObjectKey_ScopesUnderCategory(t *testing.T) {
	key, contentType, err := storage.MediaObjectKey("Hero Shot.png", "designs")
	require.NoError(t, err)
	require.Equal(t, "image/png", contentType)
	require.True(t, strings.HasPrefix(key, "designs/"))
	require.True(t, strings.HasSuffix(key, "_Hero_Shot.png"))
}

func TestMediaObjectKey_SanitizesCategory(t *testing.T) {
	key, _, err := storage.MediaObjectKey("logo.png", "../../escaped")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "escaped/"))
	require.NotContains(t, key, "..")
}

func TestMediaObjectKey_DefaultCategory(t *testing.T) {
	key, contentType, err := storage.MediaObjectKey("brochure.pdf", "")
	require.NoError(t, err)
	require.Equal(t, "application/pdf", contentType)
	require.True(t, strings.HasPrefix(key, "media/"))
}

func TestMediaObjectKey_RejectsBlockedExtension(t *testing.T) {
	_, _, err := storage.MediaObjectKey("shell.php", "media")
	require.ErrorIs(t, err, storage.ErrExtensionBlocked)
}
