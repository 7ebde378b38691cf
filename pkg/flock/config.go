package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config holds the simulation parameters. It is read-only after construction:
// the Flock keeps a reference and never mutates it, and callers must not
// either once a Flock has been built from it.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	InitialBoids int `json:"initialBoids"`

	// Rendering hint: boid triangle size in pixels
	BoidSize float64 `json:"boidSize"`

	// Physics limits
	MaxSpeed float64 `json:"maxSpeed"` // pixels per second
	MaxForce float64 `json:"maxForce"` // pixels per second squared

	// Interaction Radii
	PerceptionRadius float64 `json:"perceptionRadius"` // alignment + cohesion
	SeparationRadius float64 `json:"separationRadius"`
	MousePerception  float64 `json:"mousePerception"`

	// Pointer interaction strength
	MouseForce float64 `json:"mouseForce"`

	// Workers sets the number of goroutines used for the force pass.
	// 0 or 1 means serial.
	Workers int `json:"workers"`

	// Seed for the population RNG. 0 means derive from the clock.
	Seed uint64 `json:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       1070,
		WorldHeight:      800,
		InitialBoids:     100,
		BoidSize:         10,
		MaxSpeed:         240,
		MaxForce:         200,
		PerceptionRadius: 50,
		SeparationRadius: 50,
		MousePerception:  100,
		MouseForce:       30,
		Workers:          0,
		Seed:             0,
	}
}

// Validate fails fast on parameters the simulation cannot run with.
func (c *Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("invalid configuration: world dimensions must be positive, got %gx%g", c.WorldWidth, c.WorldHeight)
	}
	if c.InitialBoids < 0 {
		return fmt.Errorf("invalid configuration: initialBoids must be >= 0, got %d", c.InitialBoids)
	}
	if c.BoidSize <= 0 {
		return fmt.Errorf("invalid configuration: boidSize must be positive, got %g", c.BoidSize)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("invalid configuration: maxSpeed must be positive, got %g", c.MaxSpeed)
	}
	if c.MaxForce <= 0 {
		return fmt.Errorf("invalid configuration: maxForce must be positive, got %g", c.MaxForce)
	}
	if c.PerceptionRadius <= 0 {
		return fmt.Errorf("invalid configuration: perceptionRadius must be positive, got %g", c.PerceptionRadius)
	}
	if c.SeparationRadius <= 0 {
		return fmt.Errorf("invalid configuration: separationRadius must be positive, got %g", c.SeparationRadius)
	}
	if c.MousePerception <= 0 {
		return fmt.Errorf("invalid configuration: mousePerception must be positive, got %g", c.MousePerception)
	}
	if c.MouseForce <= 0 {
		return fmt.Errorf("invalid configuration: mouseForce must be positive, got %g", c.MouseForce)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid configuration: workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against the
// schema before unmarshalling.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
