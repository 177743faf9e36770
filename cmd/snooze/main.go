// Package main implements the snooze CLI, a countdown timer that renders
// once-per-second progress to the terminal and exits cleanly on Ctrl+C.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	rootpkg "snooze"
	"snooze/internal/config"
	"snooze/internal/countdown"
	"snooze/internal/interrupt"
	"snooze/internal/logger"
	"snooze/internal/paths"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=0.3.0"
//
// When ldflags are not set (bare go build), resolveVersion reads the VCS
// info that Go embeds automatically, so dev builds get a useful version
// string without needing git at runtime.
var version = "dev"

// resolveVersion returns the build version string. If [version] was set via
// ldflags at build time it is returned as-is; otherwise VCS revision and
// dirty state embedded by the Go toolchain are used to construct a
// "dev+<hash>" tag.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	hash := revision[:min(7, len(revision))]
	if dirty {
		return "dev+" + hash + ".dirty"
	}
	return "dev+" + hash
}

// ///////////////////////////////////////////////
// Exit Codes
// ///////////////////////////////////////////////

// Exit codes follow the Unix convention where signal-based exits are
// 128 + signal number.
const (
	exitOK        = 0
	exitUsage     = 1
	exitInterrupt = 130 // 128 + SIGINT
)

// ///////////////////////////////////////////////
// Config Directory
// ///////////////////////////////////////////////

// defaultConfigDir returns the platform config directory for snooze,
// typically ~/.config/snooze. Falls back to ~/.snooze, then ./.snooze,
// if the platform directories cannot be determined.
func defaultConfigDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, paths.ConfigDirRel)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, paths.FallbackDirRel)
	}
	return filepath.Join(".", paths.FallbackDirRel)
}

// seedDefaultConfig creates the config directory and writes the embedded
// default config file on first run. Failures are warnings: the countdown
// works fine on built-in defaults.
func seedDefaultConfig(dir paths.ConfigDir) {
	if err := os.MkdirAll(dir.Root, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: create config dir: %v\n", err)
		return
	}
	if _, err := os.Stat(dir.Config()); os.IsNotExist(err) {
		if writeErr := os.WriteFile(dir.Config(), rootpkg.DefaultConfigTOML, 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write default config: %v\n", writeErr)
		}
	}
}

// ///////////////////////////////////////////////
// Usage
// ///////////////////////////////////////////////

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snooze <seconds> [--multiline] [--quiet] [--bar] [--color] [--version]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Counts down <seconds>, printing progress once per second.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  --multiline        print one line per second instead of overwriting one line")
	fmt.Fprintln(w, "  --quiet, -q        print only the header and the final summary")
	fmt.Fprintln(w, "  --bar, --no-bar    show or hide the progress bar")
	fmt.Fprintln(w, "  --color, --no-color  enable or disable ANSI color")
	fmt.Fprintln(w, "  --version          print the version and exit")
}

// ///////////////////////////////////////////////
// Main
// ///////////////////////////////////////////////

func main() {
	args, err := scanArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage(os.Stderr)
		os.Exit(exitUsage)
	}
	if args.version {
		fmt.Println("snooze " + resolveVersion())
		return
	}
	if !args.haveDuration {
		printUsage(os.Stderr)
		os.Exit(exitUsage)
	}

	cfgDir := paths.ConfigDir{Root: defaultConfigDir()}
	seedDefaultConfig(cfgDir)

	cfg, err := config.Load(cfgDir.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	log, logCloser := logger.NewLogger(cfgDir.Log(), logger.ParseLevel(cfg.Log.Level), cfg.Log.MaxSizeMB)
	slog.SetDefault(log)
	slog.Info("snooze starting", "version", resolveVersion(), "duration_s", args.duration)

	opts := buildOptions(cfg, args, stdoutIsTerminal())

	latch := interrupt.New()
	latch.Install()

	res := countdown.Run(os.Stdout, os.Stderr, countdown.SystemClock{}, latch, args.duration, opts)

	code := exitOK
	if res.Interrupted {
		slog.Info("interrupted", "elapsed_s", res.Elapsed, "total_s", args.duration)
		code = exitInterrupt
	} else {
		slog.Info("completed", "elapsed_s", res.Elapsed)
	}
	logCloser.Close()
	os.Exit(code)
}
