package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"studio-api/internal/storage"

	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewDiskStore(dir, "/uploads")

	saved, err := store.Save("My Logo.png", pngBytes, "images")
	require.NoError(t, err)
	require.Equal(t, ".png", saved.Extension)
	require.Equal(t, "image/png", saved.MimeType)
	require.NotEmpty(t, saved.Hash)
	require.True(t, strings.HasPrefix(saved.FileURL, "/uploads/images/"))
	require.Contains(t, saved.StoredFilename, "My_Logo")

	_, err = os.Stat(saved.FilePath)
	require.NoError(t, err)

	require.NotNil(t, saved.ThumbnailURL)

	require.NoError(t, store.Remove(saved.FilePath, saved.ThumbnailURL))
	_, err = os.Stat(saved.FilePath)
	require.True(t, os.IsNotExist(err))
}

func TestDiskStore_RemoveMissingFileIsNoop(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, store.Remove("/nonexistent/file.png", nil))
}

func TestDiskStore_SaveRejectsBadUpload(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir(), "/uploads")
	_, err := store.Save("script.php", []byte("<?php echo 1; ?>"), "images")
	require.Error(t, err)
}

func TestDiskStore_SaveNormalizesTraversalCategory(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewDiskStore(dir, "/uploads")

	saved, err := store.Save("logo.png", pngBytes, "../../escaped")
	require.NoError(t, err)
	require.Equal(t, "escaped", saved.Category)
	require.True(t, strings.HasPrefix(saved.FileURL, "/uploads/escaped/"))

	rel, err := filepath.Rel(dir, saved.FilePath)
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(rel, ".."), "file written outside the upload dir: %s", rel)
}

func TestDiskStore_SaveDerivesCategoryFromContent(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir(), "/uploads")

	saved, err := store.Save("logo.png", pngBytes, "")
	require.NoError(t, err)
	require.Equal(t, "images", saved.Category)
	require.True(t, strings.HasPrefix(saved.FileURL, "/uploads/images/"))
}

func TestSanitizeCategory(t *testing.T) {
	require.Equal(t, "escaped", storage.SanitizeCategory("../../escaped"))
	require.Equal(t, "images", storage.SanitizeCategory("Images"))
	require.Equal(t, "", storage.SanitizeCategory("../.."))
	require.Equal(t, "", storage.SanitizeCategory(""))
}
