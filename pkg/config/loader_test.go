package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nl2tl/scenario-registry/pkg/domain"
	apperrors "github.com/nl2tl/scenario-registry/pkg/errors"
)

func TestLoader_Load(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("successful load of sample config", func(t *testing.T) {
		loader := NewLoader(filepath.Join("testdata", "scenarios.yaml"), logger)
		cfg, issues, err := loader.Load()

		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
		if cfg == nil {
			t.Fatal("Load() returned nil config")
		}

		wantNames := []string{"warehouse", "traffic_light", "search_and_rescue"}
		if !reflect.DeepEqual(cfg.Names(), wantNames) {
			t.Errorf("expected scenario names %v, got %v", wantNames, cfg.Names())
		}

		// The sample config's conventional references must surface as
		// warnings, never as load errors.
		if len(issues) == 0 {
			t.Error("expected unresolved-reference warnings for sample config, got none")
		}
	})

	t.Run("warehouse deliver signature", func(t *testing.T) {
		loader := NewLoader(filepath.Join("testdata", "scenarios.yaml"), logger)
		cfg, _, err := loader.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}

		deliver := cfg.Scenario("warehouse").Action("deliver")
		if deliver == nil {
			t.Fatal("warehouse is missing action 'deliver'")
		}

		want := []string{"item", "location"}
		if !reflect.DeepEqual(deliver.ParamTokens(), want) {
			t.Errorf("expected deliver params %v, got %v", want, deliver.ParamTokens())
		}
		if deliver.Params[0].Type != domain.KindItem {
			t.Errorf("expected first param kind item, got %v", deliver.Params[0])
		}
		if deliver.Params[1].Type != domain.KindLocation {
			t.Errorf("expected second param kind location, got %v", deliver.Params[1])
		}
		if !deliver.Role.IsEgo() {
			t.Errorf("expected deliver role ego, got %q", deliver.Role)
		}
	})

	t.Run("traffic_light locations keep declaration order", func(t *testing.T) {
		loader := NewLoader(filepath.Join("testdata", "scenarios.yaml"), logger)
		cfg, _, err := loader.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}

		want := []string{"north", "south", "east", "west"}
		got := cfg.Scenario("traffic_light").Locations
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected locations %v, got %v", want, got)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		loader := NewLoader("/nonexistent/scenarios.yaml", logger)
		_, _, err := loader.Load()

		if err == nil {
			t.Fatal("Load() expected error, got nil")
		}
		if !strings.Contains(err.Error(), apperrors.ErrCodeConfigNotFound) {
			t.Errorf("expected CONFIG_NOT_FOUND error, got %v", err)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, "warehouse: [unclosed")
		loader := NewLoader(tmpFile, logger)
		_, _, err := loader.Load()

		if err == nil {
			t.Fatal("Load() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "failed to parse config YAML") {
			t.Errorf("expected YAML parse error, got %v", err)
		}
	})

	t.Run("idempotent loads yield equal configs", func(t *testing.T) {
		loader := NewLoader(filepath.Join("testdata", "scenarios.yaml"), logger)
		first, _, err := loader.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
		second, _, err := loader.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Error("expected two loads of identical input to be structurally equal")
		}
	})

	t.Run("strict loader rejects sample config", func(t *testing.T) {
		loader := NewStrictLoader(filepath.Join("testdata", "scenarios.yaml"), logger)
		_, _, err := loader.Load()

		if err == nil {
			t.Fatal("Load() expected error under strict checking, got nil")
		}
		if !strings.Contains(err.Error(), apperrors.ErrCodeValidationFailed) {
			t.Errorf("expected VALIDATION_FAILED error, got %v", err)
		}
	})
}

func TestLoader_Load_SchemaErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	tests := []struct {
		name   string
		config string
		errMsg string
	}{
		{
			name: "missing locations",
			config: `
depot:
  actions:
    idle:
      role: ego
      params: []
`,
			errMsg: "locations",
		},
		{
			name: "empty locations",
			config: `
depot:
  locations: []
`,
			errMsg: "must not be empty",
		},
		{
			name: "duplicate location",
			config: `
depot:
  locations: [dock, dock]
`,
			errMsg: "duplicate entry",
		},
		{
			name: "action missing role",
			config: `
depot:
  locations: [dock]
  actions:
    idle:
      params: []
`,
			errMsg: "actions.idle.role",
		},
		{
			name: "action missing params",
			config: `
depot:
  locations: [dock]
  actions:
    idle:
      role: ego
`,
			errMsg: "actions.idle.params",
		},
		{
			name: "param token not an identifier",
			config: `
depot:
  locations: [dock]
  actions:
    deliver:
      role: ego
      params: [item, "drop zone"]
`,
			errMsg: "not a recognized param kind",
		},
		{
			name: "duplicate action name",
			config: `
depot:
  locations: [dock]
  actions:
    idle:
      role: ego
      params: []
    idle:
      role: ego
      params: []
`,
			errMsg: "duplicate action name",
		},
		{
			name: "target missing properties",
			config: `
depot:
  locations: [dock]
  targets:
    crate: {}
`,
			errMsg: "targets.crate.properties",
		},
		{
			name: "location not an identifier",
			config: `
depot:
  locations: [loading dock]
`,
			errMsg: "not a valid identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.config)
			loader := NewLoader(tmpFile, logger)
			_, _, err := loader.Load()

			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !apperrors.IsSchemaError(err) {
				t.Errorf("expected a schema error, got %v", err)
			}
			if !strings.Contains(err.Error(), "depot") {
				t.Errorf("expected error to name the scenario, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestLoader_Load_Boundaries(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("zero actions and zero targets still load", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, `
depot:
  locations: [dock]
`)
		loader := NewLoader(tmpFile, logger)
		cfg, issues, err := loader.Load()

		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
		if len(issues) != 0 {
			t.Errorf("expected no warnings, got %v", issues)
		}

		depot := cfg.Scenario("depot")
		if depot == nil {
			t.Fatal("scenario depot not loaded")
		}
		if len(depot.Actions) != 0 || len(depot.Targets) != 0 {
			t.Errorf("expected empty actions and targets, got %d/%d", len(depot.Actions), len(depot.Targets))
		}
	})

	t.Run("empty document loads zero scenarios", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, "")
		loader := NewLoader(tmpFile, logger)
		cfg, _, err := loader.Load()

		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
		if len(cfg.Scenarios) != 0 {
			t.Errorf("expected 0 scenarios, got %d", len(cfg.Scenarios))
		}
	})
}

// Helper function to create a temporary config file for testing
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "scenarios.yaml")

	err := os.WriteFile(tmpFile, []byte(content), 0600)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	return tmpFile
}
