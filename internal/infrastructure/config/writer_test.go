package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sectionNames returns the table names of content without brackets.
func sectionNames(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, strings.Trim(line, "[]"))
		}
	}
	return sections
}

func indexOf(list []string, want string) int {
	for i, v := range list {
		if v == want {
			return i
		}
	}
	return -1
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	sections := sectionNames(string(content))
	require.NotEmpty(t, sections)
	assert.IsNonDecreasing(t, sections)
	assert.Less(t, indexOf(sections, "appearance"), indexOf(sections, "appearance.dark_palette"))
	assert.Contains(t, string(content), "default_theme = 'light'")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[system]
follow_system = true

[appearance]
default_theme = 'light'

[system.extra]
a = 1

[appearance.dark_palette]
background = '#000000'
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"appearance",
		"appearance.dark_palette",
		"system",
		"system.extra",
	}, sectionNames(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n"))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.NotContains(t, result, "\n\n\n")
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])
	assert.Contains(t, string(data), "default_theme")
	assert.Contains(t, string(data), "poll_interval_ms")
}

func TestInitConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	created, err := InitConfigFile(configPath, false)
	require.NoError(t, err)
	assert.True(t, created)
	assert.FileExists(t, filepath.Join(filepath.Dir(configPath), "config.schema.json"))

	created, err = InitConfigFile(configPath, false)
	require.NoError(t, err)
	assert.False(t, created)
}
