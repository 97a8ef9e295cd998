package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

const tuningFile = "tuning.yaml"

// Load loads the tuning table.
// Search order: customPath -> ~/.promptarcade/tuning.yaml -> ./configs/tuning.yaml -> embedded default.
// Only a bad custom path is an error; the other locations are skipped when unusable.
func Load(customPath string) (TuningTable, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TuningTable{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		table, err := Parse(data)
		if err != nil {
			return TuningTable{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return table, nil
	}

	candidates := []string{userConfigPath(tuningFile), filepath.Join("configs", tuningFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if table, err := Parse(data); err == nil {
			return table, nil
		}
	}

	if table, err := Parse(defaultTuningYAML); err == nil {
		return table, nil
	}
	return DefaultTuningTable(), nil
}

// Parse decodes and validates a tuning file. Archetypes or difficulties the
// file leaves out are filled from the built-in table.
func Parse(data []byte) (TuningTable, error) {
	var table TuningTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return TuningTable{}, err
	}
	table = table.withDefaults()
	if err := table.Validate(); err != nil {
		return TuningTable{}, err
	}
	return table, nil
}

// Validate reports every structural problem in the table.
func (t TuningTable) Validate() error {
	var errs []error

	for a, p := range t.Archetypes {
		if !a.Valid() {
			errs = append(errs, fmt.Errorf("unknown archetype %q", a))
			continue
		}
		if p.Tuning.SpawnInterval < 0 {
			errs = append(errs, fmt.Errorf("%s: spawn_interval must not be negative", a))
		}
		if p.Tuning.Gravity < 0 {
			errs = append(errs, fmt.Errorf("%s: gravity must not be negative", a))
		}
		if p.Tuning.JumpImpulse > 0 {
			errs = append(errs, fmt.Errorf("%s: jump_impulse must be negative (upward)", a))
		}
		if p.Tuning.Lives < 0 {
			errs = append(errs, fmt.Errorf("%s: lives must not be negative", a))
		}
		if p.Tuning.TargetRatio < 0 || p.Tuning.TargetRatio > 1 {
			errs = append(errs, fmt.Errorf("%s: target_ratio must be within [0, 1]", a))
		}
		for name, s := range map[string]Shape{"player": p.Player, "obstacle": p.Obstacle, "target": p.Target} {
			if s.Width < 0 || s.Height < 0 {
				errs = append(errs, fmt.Errorf("%s: %s size must not be negative", a, name))
			}
			if s.MaxSpeed < s.MinSpeed {
				errs = append(errs, fmt.Errorf("%s: %s max_speed below min_speed", a, name))
			}
		}
	}

	for d, s := range t.Difficulties {
		if !d.Valid() {
			errs = append(errs, fmt.Errorf("unknown difficulty %q", d))
			continue
		}
		if s.SpawnMultiplier < 0 || s.SpeedMultiplier < 0 || s.GravityMultiplier < 0 {
			errs = append(errs, fmt.Errorf("%s: multipliers must not be negative", d))
		}
	}

	for _, a := range core.AllArchetypes() {
		if _, ok := t.Archetypes[a]; !ok {
			errs = append(errs, fmt.Errorf("missing archetype %q", a))
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".promptarcade", filename)
}
