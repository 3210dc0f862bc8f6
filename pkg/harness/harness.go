// Package harness runs golden-file model tests: a test builds a CSG tree,
// the harness renders it at low quality and compares the script against a
// checked-in expected file, tolerating tiny numeric drift.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/dotscad/pkg/csg"
	"github.com/chazu/dotscad/pkg/scad"
)

// Action selects what CheckModel does with the rendered model. Normally
// only ActionTest is checked in; ActionCreate is for recording a new
// golden file and fails the test so it cannot be left enabled.
type Action int

const (
	ActionTest Action = iota
	ActionCreate
)

// CheckModel renders the tree returned by build and compares it against
// testdata/good_models/<name>.scad. On mismatch the rendered script is
// saved under testdata/bad_models for inspection and the test fails.
func CheckModel(t *testing.T, name string, action Action, build func() (csg.Tree, error)) {
	t.Helper()

	tree, err := build()
	if err != nil {
		t.Fatalf("building model %q: %v", name, err)
	}
	cfg := scad.DefaultConfig()
	cfg.Detail = scad.QualityLow.Detail()
	actual, err := scad.Emit(tree, cfg)
	if err != nil {
		t.Fatalf("rendering model %q: %v", name, err)
	}

	switch action {
	case ActionCreate:
		path := goldenPath(name)
		if err := save(path, actual); err != nil {
			t.Fatalf("saving golden file: %v", err)
		}
		t.Fatalf("created %s; switch the action back to ActionTest", path)
	case ActionTest:
		expected, err := os.ReadFile(goldenPath(name))
		if err != nil {
			t.Fatalf("loading golden file for %q: %v", name, err)
		}
		same, err := Compare(actual, string(expected), MaxRelative)
		if err != nil {
			t.Fatalf("comparing model %q: %v", name, err)
		}
		if !same {
			bad := filepath.Join("testdata", "bad_models", name+".scad")
			if err := save(bad, actual); err != nil {
				t.Logf("saving mismatched render: %v", err)
			} else {
				t.Logf("mismatched render saved as %s", bad)
			}
			t.Fatalf("model %q does not match its golden file", name)
		}
	default:
		t.Fatalf("unknown action %d", action)
	}
}

func goldenPath(name string) string {
	return filepath.Join("testdata", "good_models", name+".scad")
}

func save(path, data string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("harness: %w", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("harness: %w", err)
	}
	return nil
}
