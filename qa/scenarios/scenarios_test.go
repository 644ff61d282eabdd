package scenarios

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenarios found")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	tmp, err := os.CreateTemp(t.TempDir(), "bad*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(":"); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp.Name()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestScenarioAccessors(t *testing.T) {
	sc := &Scenario{Range: "14d", Anchor: "clock", Now: "2026-10-17"}
	if w, err := sc.Window(); err != nil || w.String() != "14d" {
		t.Fatalf("window: %v %v", w, err)
	}
	if m, err := sc.AnchorMode(); err != nil || m != "clock" {
		t.Fatalf("anchor: %v %v", m, err)
	}
	clock, err := sc.Clock()
	if err != nil || clock().Format("2006-01-02") != "2026-10-17" {
		t.Fatalf("clock: %v", err)
	}
	sc.Range = "1y"
	if _, err := sc.Window(); err == nil {
		t.Fatal("expected range error")
	}
}
