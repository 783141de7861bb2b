package policy

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes and normalizes a single policy document from r. Unknown
// fields are rejected.
func Load(r io.Reader) (Policy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Policy
	if err := dec.Decode(&p); err != nil {
		return Policy{}, fmt.Errorf("reprise: decode policy: %w", err)
	}
	return p.Normalize()
}

// LoadFile reads a policy document from path.
func LoadFile(path string) (Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, fmt.Errorf("reprise: open policy file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
