package kvstore

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenMissingFileIsEmptyStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "store.json"), testLogger())
	require.NoError(t, err)

	_, ok := s.Get("data.ratingTemplates")
	assert.False(t, ok)
}

func TestSetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := Open(path, testLogger())
	require.NoError(t, err)

	value := map[string]string{"hello": "world"}
	require.NoError(t, s.Set("data.ratingTemplates", value))

	raw, ok := s.Get("data.ratingTemplates")
	require.True(t, ok)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, value, got)

	// A second instance reads the same document from disk.
	s2, err := Open(path, testLogger())
	require.NoError(t, err)
	raw, ok = s2.Get("data.ratingTemplates")
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, value, got)
}

func TestCommentsAreStripped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	doc := "{\n// hand-written note\n\"key\": 1 /* inline */\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := Open(path, testLogger())
	require.NoError(t, err)

	raw, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, "1", string(raw))
}

func TestSlashesInStringValuesSurvive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := Open(path, testLogger())
	require.NoError(t, err)

	url := "https://example.com/icons/relic.png"
	require.NoError(t, s.Set("data.iconUrl", url))

	s2, err := Open(path, testLogger())
	require.NoError(t, err)

	raw, ok := s2.Get("data.iconUrl")
	require.True(t, ok)

	var got string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, url, got)
}

func TestBackupWrittenBeforeFirstMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"key": "old"}`), 0644))

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("key", "new"))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.JSONEq(t, `{"key": "old"}`, string(backup))
}

func TestFailedWriteKeepsDocument(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	s, err := Open(filepath.Join(blocker, "store.json"), testLogger())
	require.NoError(t, err)

	require.Error(t, s.Set("key", "value"))
	_, ok := s.Get("key")
	assert.False(t, ok)
}
