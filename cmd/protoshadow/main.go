package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"protoshadow/pkg/merge"
	"protoshadow/pkg/protoio"
	"protoshadow/pkg/watch"
)

func main() {
	watchMode := flag.Bool("watch", false, "Re-run the merge whenever an input file changes")
	watchDelay := flag.Duration("watch-delay", 2*time.Second, "Quiet period before a re-merge in watch mode")
	logLevel := flag.String("log-level", getEnv("PROTOSHADOW_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	flag.Usage = usage
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logrus.SetLevel(level)

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}
	activePath, shadowPath, dstPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	ctx := context.Background()
	run := func() error { return mergeOnce(ctx, activePath, shadowPath, dstPath) }

	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Merge failed")
	}
	if !*watchMode {
		return
	}

	w, err := watch.New([]string{activePath, shadowPath}, *watchDelay, func() {
		if err := run(); err != nil {
			logrus.WithError(err).Error("Merge failed")
		}
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to watch inputs")
	}
	w.Start()
	defer w.Stop()

	logrus.WithFields(logrus.Fields{
		"active": activePath,
		"shadow": shadowPath,
	}).Info("Watching for input changes")

	sigCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-sigCtx.Done()
}

// mergeOnce loads both descriptors, merges them, and writes the result.
func mergeOnce(ctx context.Context, activePath, shadowPath, dstPath string) error {
	active, err := protoio.Load(ctx, activePath)
	if err != nil {
		return fmt.Errorf("loading active descriptor: %w", err)
	}
	shadow, err := protoio.Load(ctx, shadowPath)
	if err != nil {
		return fmt.Errorf("loading shadow descriptor: %w", err)
	}

	target, err := merge.File(active, shadow)
	if err != nil {
		return err
	}
	if err := protoio.Store(dstPath, target); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"active": activePath,
		"shadow": shadowPath,
		"out":    dstPath,
	}).Info("Merged descriptors")
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <active> <shadow> <destination>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Merges an active descriptor with the previous version's shadow descriptor,\n")
	fmt.Fprintf(os.Stderr, "recovering hidden deprecated fields and enum values. Inputs may be text-format\n")
	fmt.Fprintf(os.Stderr, "FileDescriptorProto dumps or .proto sources.\n\nFlags:\n")
	flag.PrintDefaults()
}

// getEnv returns an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
