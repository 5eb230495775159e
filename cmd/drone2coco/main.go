package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/drone2coco/internal/check"
	"github.com/ironsheep/drone2coco/internal/config"
	"github.com/ironsheep/drone2coco/internal/remap"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("drone2coco - convert drone video annotations to COCO tracking format")
	fmt.Println()
	fmt.Println("Usage: drone2coco [options]")
	fmt.Println()
	fmt.Println("Without -split, converts the train and val exports and checks the train split.")
	fmt.Println()
	fmt.Println("Options:")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
	fmt.Println("  --version, -v    Print version information")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  DRONE2COCO_LOG_LEVEL=debug    Enable debug logging")
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("drone2coco %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "help":
			usage()
			return
		}
	}

	configPath := flag.String("config", "", "path to a JSON config file (optional)")
	dataRoot := flag.String("data-root", "", "dataset root directory (overrides config)")
	split := flag.String("split", "", "convert only this split (train, val or test)")
	source := flag.String("source", "", "source export file name under <data-root>/annotations (defaults to the split's configured file)")
	withTest := flag.Bool("test", false, "also convert the test split when converting all splits")
	perVideo := flag.Bool("per-video-first-frame", false, "track the first frame per video instead of with one running value")
	skipCheck := flag.Bool("skip-check", false, "skip the consistency check")
	flag.Usage = usage
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	verbose := os.Getenv("DRONE2COCO_LOG_LEVEL") == "debug"
	if verbose {
		log.Printf("drone2coco v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		cfg = loaded
	}
	if *dataRoot != "" {
		cfg.DataRoot = *dataRoot
	}
	if *perVideo {
		cfg.PerVideoFirstFrame = true
	}
	if *skipCheck {
		cfg.Check.Skip = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	splits := []string{config.SplitTrain, config.SplitVal}
	if *withTest {
		splits = append(splits, config.SplitTest)
	}
	if *split != "" {
		splits = []string{*split}
	}

	for _, s := range splits {
		file := *source
		if file == "" || *split == "" {
			var err error
			if file, err = cfg.SourceFile(s); err != nil {
				log.Fatalf("Split error: %v", err)
			}
		}
		if _, err := remap.RunSplit(cfg, file, s, verbose); err != nil {
			log.Fatalf("Conversion of %s failed: %v", s, err)
		}
	}

	if cfg.Check.Skip || (*split != "" && *split != cfg.Check.Split) {
		return
	}

	report, err := check.Check(cfg.CheckImagesDir(), cfg.SplitPath(cfg.Check.Split), cfg.Check.StartID,
		check.Options{OverlayPath: cfg.Check.OverlayPath})
	if err != nil {
		log.Fatalf("Consistency check failed: %v", err)
	}

	log.Printf("Checked image %d (%s): %d annotations, %d out of bounds, %d invalid, %d orphaned",
		report.ImageID, report.FramePath, report.Annotations, report.OutOfBounds, report.InvalidBoxes, report.OrphanAnnotations)
	if !report.DimensionsMatch {
		log.Printf("warning: frame is %dx%d but record says %dx%d",
			report.Frame.Width, report.Frame.Height, report.Width, report.Height)
	}
	if report.OverlayPath != "" {
		log.Printf("Overlay written to %s", report.OverlayPath)
	}
}
