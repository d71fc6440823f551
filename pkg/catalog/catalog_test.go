package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "version": "1.0.0",
  "lastUpdated": "2024-01-01",
  "templates": [
    {"name": "intro_email", "displayName": "Intro Email", "channel": "email", "description": "First touch", "tags": ["opener"]},
    {"name": "value_call", "displayName": "Value Call", "channel": "phone", "description": "Pitch call"},
    {"name": "general_followup", "displayName": "Follow Up", "channel": "other"}
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "templates.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleCatalog))

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cat.Version)
	assert.Equal(t, []string{"intro_email", "value_call", "general_followup"}, cat.Names())

	phone := cat.ForChannel("phone")
	require.Len(t, phone, 1)
	assert.Equal(t, "value_call", phone[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := Load(writeCatalog(t, "{not json"))
	assert.Error(t, err)
}
