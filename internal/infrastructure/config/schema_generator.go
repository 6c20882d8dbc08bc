package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/teampw/themestore/config.schema.json"

// GenerateSchema returns the JSON schema describing config.toml.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Every key has a default, so nothing is required in the file.
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "themestore configuration"
	schema.Description = "Configuration schema for themestore, a light/dark theme preference manager"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// SchemaPath returns where the schema for configFile is written.
func SchemaPath(configFile string) string {
	return filepath.Join(filepath.Dir(configFile), schemaFileName)
}

// WriteSchemaFile writes the JSON schema next to the config file and returns its path.
func WriteSchemaFile(configFile string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaFile := SchemaPath(configFile)
	if err := os.MkdirAll(filepath.Dir(schemaFile), dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeFileAtomic(schemaFile, data); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}

// InitConfigFile writes the default configuration and its schema.
// An existing config file is left untouched unless force is set.
func InitConfigFile(configFile string, force bool) (created bool, err error) {
	if !force {
		if _, statErr := os.Stat(configFile); statErr == nil {
			return false, nil
		}
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return false, err
	}
	if _, err := WriteSchemaFile(configFile); err != nil {
		return true, err
	}
	return true, nil
}
