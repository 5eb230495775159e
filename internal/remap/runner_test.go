package remap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/drone2coco/internal/coco"
	"github.com/ironsheep/drone2coco/internal/config"
)

func setupDataRoot(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataRoot = t.TempDir()
	require.NoError(t, os.MkdirAll(cfg.AnnotationsDir(), 0o755))
	for _, f := range []string{cfg.TrainFile, cfg.ValFile, cfg.TestFile} {
		require.NoError(t, os.WriteFile(cfg.SourcePath(f), []byte(remapSource), 0o644))
	}
	return cfg
}

func TestRunSplit(t *testing.T) {
	cfg := setupDataRoot(t)

	stats, err := RunSplit(cfg, cfg.TrainFile, config.SplitTrain, true)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Annotations)

	doc, err := coco.ReadDocument(filepath.Join(cfg.DataRoot, "annotations", "train.json"))
	require.NoError(t, err)
	assert.Len(t, doc.Annotations, 3)
}

func TestRunSplit_TestSplitDropsAnnotations(t *testing.T) {
	cfg := setupDataRoot(t)

	stats, err := RunSplit(cfg, cfg.TestFile, config.SplitTest, false)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Annotations)

	doc, err := coco.ReadDocument(cfg.SplitPath(config.SplitTest))
	require.NoError(t, err)
	assert.Empty(t, doc.Annotations)
	assert.Len(t, doc.Images, 2)
	assert.Equal(t, coco.FullRange, doc.FrameRange)
}

func TestRunSplit_PerVideoFirstFrame(t *testing.T) {
	cfg := setupDataRoot(t)
	cfg.PerVideoFirstFrame = true

	_, err := RunSplit(cfg, cfg.ValFile, config.SplitVal, false)
	require.NoError(t, err)

	doc, err := coco.ReadDocument(cfg.SplitPath(config.SplitVal))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Images[0].FrameID)
	assert.Equal(t, 1, doc.Images[1].FrameID)
}

func TestRunSplit_MissingSource(t *testing.T) {
	cfg := setupDataRoot(t)

	_, err := RunSplit(cfg, "absent.json", config.SplitTrain, false)
	assert.Error(t, err)
}
