package infrastructure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/templates/domain"
)

// File names of the two tables inside the data directory.
const (
	TemplatesFile = "prompt_templates.json"
	PracticesFile = "model_best_practices.json"
)

// LoadStore reads both tables from dataDir and builds the Store.
// Every failure is returned as an *apperr.ConfigurationError.
func LoadStore(dataDir string) (*domain.Store, error) {
	templatesPath := filepath.Join(dataDir, TemplatesFile)
	keys, records, err := readTable(templatesPath, templatesSchema)
	if err != nil {
		return nil, err
	}
	templates := make([]domain.TemplateEntry, 0, len(keys))
	for _, key := range keys {
		var entry domain.TemplateEntry
		if err := mapstructure.Decode(records[key], &entry); err != nil {
			return nil, &apperr.ConfigurationError{Path: templatesPath, Reason: fmt.Sprintf("entry %q", key), Err: err}
		}
		entry.ModelKey = key
		templates = append(templates, entry)
	}

	practicesPath := filepath.Join(dataDir, PracticesFile)
	keys, records, err = readTable(practicesPath, practicesSchema)
	if err != nil {
		return nil, err
	}
	practices := make([]domain.BestPracticeEntry, 0, len(keys))
	for _, key := range keys {
		var entry domain.BestPracticeEntry
		if err := mapstructure.Decode(records[key], &entry); err != nil {
			return nil, &apperr.ConfigurationError{Path: practicesPath, Reason: fmt.Sprintf("entry %q", key), Err: err}
		}
		entry.ModelKey = key
		practices = append(practices, entry)
	}

	store, err := domain.NewStore(templates, practices)
	if err != nil {
		var cfgErr *apperr.ConfigurationError
		if errors.As(err, &cfgErr) && cfgErr.Path == "" {
			cfgErr.Path = dataDir
		}
		return nil, err
	}

	slog.Info("template store loaded", "data_dir", dataDir, "templates", len(templates), "practices", len(practices))
	return store, nil
}

// readTable validates a table file and returns its keys in file order with the decoded records.
func readTable(path string, schema *jsonschema.Schema) ([]string, map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &apperr.ConfigurationError{Path: path, Reason: "failed to read table", Err: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, &apperr.ConfigurationError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if errs := validateDocument(schema, doc); len(errs) > 0 {
		return nil, nil, &apperr.ConfigurationError{Path: path, Reason: "schema violation: " + strings.Join(errs, "; ")}
	}

	keys, err := objectKeys(data)
	if err != nil {
		return nil, nil, &apperr.ConfigurationError{Path: path, Reason: "invalid JSON", Err: err}
	}
	return keys, doc.(map[string]any), nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
func objectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
