// Package config holds the dataset locations and run options for drone2coco.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default dataset layout.
const (
	DefaultDataRoot  = "data/drone"
	DefaultTrainFile = "instances_train_objects_in_water.json"
	DefaultValFile   = "instances_val_objects_in_water.json"
	DefaultTestFile  = "instances_test_objects_in_water.json"

	DefaultCheckSplit   = "train"
	DefaultCheckStartID = 1000
	DefaultOverlayPath  = "annotations.png"
)

// Split names used for output files.
const (
	SplitTrain = "train"
	SplitVal   = "val"
	SplitTest  = "test"
)

const maxConfigSize = 1 * 1024 * 1024 // 1MB

// Config locates the dataset and tunes a run.
type Config struct {
	// DataRoot contains annotations/ and one image directory per split.
	DataRoot  string `json:"data_root"`
	TrainFile string `json:"train_file"`
	ValFile   string `json:"val_file"`
	TestFile  string `json:"test_file"`

	// PerVideoFirstFrame selects per-video first-frame tracking.
	PerVideoFirstFrame bool `json:"per_video_first_frame"`

	Check CheckConfig `json:"check"`
}

// CheckConfig controls the consistency check run after conversion.
type CheckConfig struct {
	Skip bool `json:"skip"`

	// Split names both the image directory under DataRoot and the output file.
	Split       string `json:"split"`
	StartID     int    `json:"start_id"`
	OverlayPath string `json:"overlay_path"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		DataRoot:  DefaultDataRoot,
		TrainFile: DefaultTrainFile,
		ValFile:   DefaultValFile,
		TestFile:  DefaultTestFile,
		Check: CheckConfig{
			Split:       DefaultCheckSplit,
			StartID:     DefaultCheckStartID,
			OverlayPath: DefaultOverlayPath,
		},
	}
}

// Load reads a JSON config file. Fields the file omits keep their defaults.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that every path option is set.
func (c *Config) Validate() error {
	if c.DataRoot == "" {
		return fmt.Errorf("data_root must not be empty")
	}
	for name, v := range map[string]string{
		"train_file": c.TrainFile,
		"val_file":   c.ValFile,
		"test_file":  c.TestFile,
	} {
		if v == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if filepath.Base(v) != v {
			return fmt.Errorf("%s must be a file name inside %s, got %q", name, c.AnnotationsDir(), v)
		}
	}
	if !c.Check.Skip {
		if c.Check.Split == "" {
			return fmt.Errorf("check.split must not be empty")
		}
		if c.Check.StartID < 0 {
			return fmt.Errorf("check.start_id must be >= 0, got %d", c.Check.StartID)
		}
		if c.Check.OverlayPath == "" {
			return fmt.Errorf("check.overlay_path must not be empty")
		}
	}
	return nil
}

// AnnotationsDir is where both source exports and converted splits live.
func (c *Config) AnnotationsDir() string {
	return filepath.Join(c.DataRoot, "annotations")
}

// SourcePath resolves a source export file name.
func (c *Config) SourcePath(file string) string {
	return filepath.Join(c.AnnotationsDir(), file)
}

// SplitPath is the output path for a split: <dataRoot>/annotations/<split>.json.
func (c *Config) SplitPath(split string) string {
	return filepath.Join(c.AnnotationsDir(), split+".json")
}

// SourceFile returns the configured export for a standard split name.
func (c *Config) SourceFile(split string) (string, error) {
	switch split {
	case SplitTrain:
		return c.TrainFile, nil
	case SplitVal:
		return c.ValFile, nil
	case SplitTest:
		return c.TestFile, nil
	}
	return "", fmt.Errorf("unknown split %q: want %s, %s or %s", split, SplitTrain, SplitVal, SplitTest)
}

// CheckImagesDir is the frame directory inspected by the consistency check.
func (c *Config) CheckImagesDir() string {
	return filepath.Join(c.DataRoot, c.Check.Split)
}
