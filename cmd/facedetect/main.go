package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/yunet-facedetect/internal/config"
	"github.com/ironsheep/yunet-facedetect/internal/driver"
	"github.com/ironsheep/yunet-facedetect/internal/logging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("facedetect %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("facedetect - YuNet face detection demo")
			fmt.Println()
			fmt.Println("Usage: facedetect [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=true    Enable debug logging\n", logging.DebugEnv)
			fmt.Println()
			fmt.Printf("Detects faces in %q with %q and shows the result.\n",
				config.DefaultImagePath, config.DefaultModelPath)
			return
		}
	}

	logger, err := logging.NewLogger("facedetect", logging.LevelFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Debugw("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	if _, err := driver.New(config.Default(), logger).Run(); err != nil {
		logger.Errorw("run failed", "error", err)
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
