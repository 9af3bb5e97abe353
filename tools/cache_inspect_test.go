package main

import (
	"movie-rec/cache"
	"movie-rec/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenStore_Missing_Cache_Dir(t *testing.T) {
	req := require.New(t)
	dir := filepath.Join(t.TempDir(), "typo")

	_, _, err := openStore(inspectConfig{CacheDir: dir})
	req.Error(err)
	req.NoDirExists(dir)
}

func TestOpenStore_Cache_Dir_Is_A_File(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "cache")
	req.NoError(os.WriteFile(path, []byte("x"), 0o644))

	_, _, err := openStore(inspectConfig{CacheDir: path})
	req.Error(err)
}

func TestOpenStore_Lists_Artifact_Keys(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	fileStore, err := cache.NewFileStore(dir)
	req.NoError(err)
	req.NoError(fileStore.Put(cache.KeyLearnedModel, []byte(`{"word_counts":{},"vocabulary_size":0}`)))

	store, closeStore, err := openStore(inspectConfig{CacheDir: dir})
	req.NoError(err)
	defer closeStore()

	keys, err := store.Keys()
	req.NoError(err)
	req.Equal([]string{cache.KeyLearnedModel}, keys)
}

func TestSummarize_File_Store_Artifacts(t *testing.T) {
	req := require.New(t)
	store, err := cache.NewFileStore(t.TempDir())
	req.NoError(err)
	req.NoError(store.Put(cache.KeyLearnedModel, []byte(`{"word_counts":{"comedy":{"funny":2}},"vocabulary_size":1}`)))
	req.NoError(store.Put(cache.KeyCatalogFingerprints, []byte(`[{"id":"1","fingerprint":{"comedy":1}}]`)))
	req.NoError(store.Put("notes", []byte(`{}`)))

	keys, err := store.Keys()
	req.NoError(err)
	summaries := map[string]string{}
	var model *domain.LearnedModel
	for _, key := range keys {
		data, err := store.Get(key)
		req.NoError(err)
		summary, learned := summarize(key, data)
		summaries[key] = summary
		if learned != nil {
			model = learned
		}
	}

	req.Equal(map[string]string{
		cache.KeyLearnedModel:        "1 genres, vocabulary 1",
		cache.KeyCatalogFingerprints: "1 fingerprints",
		"notes":                      "unknown artifact",
	}, summaries)
	req.NotNil(model)
	req.Equal([]string{"comedy"}, model.Genres())
}
