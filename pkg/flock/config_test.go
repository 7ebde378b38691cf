package flock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig must validate, got: %v", err)
	}
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero world width", func(c *Config) { c.WorldWidth = 0 }},
		{"negative world height", func(c *Config) { c.WorldHeight = -1 }},
		{"negative population", func(c *Config) { c.InitialBoids = -1 }},
		{"zero boid size", func(c *Config) { c.BoidSize = 0 }},
		{"zero max speed", func(c *Config) { c.MaxSpeed = 0 }},
		{"negative max force", func(c *Config) { c.MaxForce = -5 }},
		{"zero perception radius", func(c *Config) { c.PerceptionRadius = 0 }},
		{"zero separation radius", func(c *Config) { c.SeparationRadius = 0 }},
		{"zero mouse perception", func(c *Config) { c.MousePerception = 0 }},
		{"zero mouse force", func(c *Config) { c.MouseForce = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.json")
	schemaFile := filepath.Join(dir, "config.schema.json")

	schema := `{
		"type": "object",
		"properties": {
			"worldWidth": {"type": "number", "exclusiveMinimum": 0},
			"worldHeight": {"type": "number", "exclusiveMinimum": 0},
			"maxSpeed": {"type": "number", "exclusiveMinimum": 0}
		}
	}`
	config := `{"worldWidth": 640, "worldHeight": 480, "maxSpeed": 120}`

	if err := os.WriteFile(schemaFile, []byte(schema), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configFile, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configFile, schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.WorldWidth != 640 || cfg.WorldHeight != 480 || cfg.MaxSpeed != 120 {
		t.Errorf("loaded config = %+v; want overrides applied", cfg)
	}
	// Fields absent from the file keep their defaults.
	if cfg.PerceptionRadius != DefaultConfig().PerceptionRadius {
		t.Errorf("perceptionRadius = %g; want default %g", cfg.PerceptionRadius, DefaultConfig().PerceptionRadius)
	}
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.json")
	schemaFile := filepath.Join(dir, "config.schema.json")

	schema := `{
		"type": "object",
		"properties": {
			"worldWidth": {"type": "number", "exclusiveMinimum": 0}
		}
	}`
	config := `{"worldWidth": -10}`

	if err := os.WriteFile(schemaFile, []byte(schema), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configFile, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(configFile, schemaFile); err == nil {
		t.Error("expected schema validation failure, got nil")
	}
}
