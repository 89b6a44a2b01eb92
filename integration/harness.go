//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/encodeous/dvsim/state"
	"github.com/goccy/go-yaml"
)

// writeTopology marshals cfg into a temp yaml file and returns its path. The
// file is cleaned up with the test.
func writeTopology(t *testing.T, cfg state.TopologyCfg) string {
	t.Helper()
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		t.Fatalf("failed to marshal topology: %s", err)
	}
	path := filepath.Join(t.TempDir(), "topology.yaml")
	err = os.WriteFile(path, out, 0644)
	if err != nil {
		t.Fatalf("failed to write topology: %s", err)
	}
	return path
}

// writeRawTopology writes a literal yaml document, for configs that should
// fail to parse or validate.
func writeRawTopology(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topology.yaml")
	err := os.WriteFile(path, []byte(doc), 0644)
	if err != nil {
		t.Fatalf("failed to write topology: %s", err)
	}
	return path
}
