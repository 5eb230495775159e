package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DataRoot != "data/drone" {
		t.Errorf("DataRoot: got %q, want data/drone", cfg.DataRoot)
	}
	if cfg.TrainFile != "instances_train_objects_in_water.json" {
		t.Errorf("TrainFile: got %q", cfg.TrainFile)
	}
	if cfg.Check.StartID != 1000 {
		t.Errorf("Check.StartID: got %d, want 1000", cfg.Check.StartID)
	}
	if cfg.PerVideoFirstFrame {
		t.Error("PerVideoFirstFrame should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestPaths(t *testing.T) {
	cfg := Default()

	if got, want := cfg.SplitPath("train"), filepath.Join("data/drone", "annotations", "train.json"); got != want {
		t.Errorf("SplitPath: got %q, want %q", got, want)
	}
	if got, want := cfg.SourcePath(cfg.ValFile), filepath.Join("data/drone", "annotations", DefaultValFile); got != want {
		t.Errorf("SourcePath: got %q, want %q", got, want)
	}
	if got, want := cfg.CheckImagesDir(), filepath.Join("data/drone", "train"); got != want {
		t.Errorf("CheckImagesDir: got %q, want %q", got, want)
	}
}

func TestSourceFile(t *testing.T) {
	cfg := Default()

	tests := []struct {
		split string
		want  string
	}{
		{SplitTrain, DefaultTrainFile},
		{SplitVal, DefaultValFile},
		{SplitTest, DefaultTestFile},
	}
	for _, tt := range tests {
		t.Run(tt.split, func(t *testing.T) {
			got, err := cfg.SourceFile(tt.split)
			if err != nil {
				t.Fatalf("SourceFile(%q) failed: %v", tt.split, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := cfg.SourceFile("holdout"); err == nil {
		t.Error("SourceFile should reject unknown split")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drone2coco.json")
	testJSON := `{
  "data_root": "/datasets/drone",
  "per_video_first_frame": true,
  "check": {"start_id": 5}
}`
	if err := os.WriteFile(path, []byte(testJSON), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataRoot != "/datasets/drone" {
		t.Errorf("DataRoot: got %q", cfg.DataRoot)
	}
	if !cfg.PerVideoFirstFrame {
		t.Error("PerVideoFirstFrame: got false, want true")
	}
	if cfg.Check.StartID != 5 {
		t.Errorf("Check.StartID: got %d, want 5", cfg.Check.StartID)
	}
	// Omitted fields keep defaults.
	if cfg.TrainFile != DefaultTrainFile {
		t.Errorf("TrainFile: got %q, want default", cfg.TrainFile)
	}
	if cfg.Check.OverlayPath != DefaultOverlayPath {
		t.Errorf("Check.OverlayPath: got %q, want default", cfg.Check.OverlayPath)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"wrong extension", write("cfg.yaml", "{}"), "extension"},
		{"missing file", filepath.Join(dir, "absent.json"), "stat"},
		{"bad json", write("bad.json", "{"), "parse"},
		{"empty data root", write("root.json", `{"data_root": ""}`), "data_root"},
		{"nested train file", write("nested.json", `{"train_file": "sub/train.json"}`), "train_file"},
		{"negative start id", write("start.json", `{"check": {"start_id": -1}}`), "start_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_SkippedCheck(t *testing.T) {
	cfg := Default()
	cfg.Check = CheckConfig{Skip: true}

	if err := cfg.Validate(); err != nil {
		t.Errorf("skipped check should not need check options: %v", err)
	}
}
