// Package instance loads TSP instance files and exports solver traces.
//
// An instance file is TOML:
//
//	name   = "berlin-sample"
//	labels = ["A", "B", "C", "D"]
//	rows = [
//	  [0.0, 10.0, 15.0, 20.0],
//	  [10.0, 0.0, 35.0, 25.0],
//	  [15.0, 35.0, 0.0, 30.0],
//	  [20.0, 25.0, 30.0, 0.0],
//	]
//
// labels and name are optional; the solver performs full matrix
// validation, so this package only checks file-level shape.
package instance

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Instance is a decoded TSP instance file.
type Instance struct {
	Name   string      `toml:"name"`
	Labels []string    `toml:"labels"`
	Rows   [][]float64 `toml:"rows"`
}

// Parse decodes a TOML instance document.
func Parse(data []byte) (*Instance, error) {
	var inst Instance
	if err := toml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}
	if len(inst.Rows) == 0 {
		return nil, fmt.Errorf("instance has no cost rows")
	}

	return &inst, nil
}

// Load reads and decodes an instance file from disk.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance: %w", err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = path
	}

	return inst, nil
}
