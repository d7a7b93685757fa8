/*
DESCRIPTION
  segmenter extracts connected foreground components from a sequence of
  frames, selects them by area and renders them in label colours with their
  bounding boxes.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// segmenter is a command line blob extractor for frame directories and
// MJPEG files.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/segmenter/blob"
	"github.com/ausocean/segmenter/blob/config"
	"github.com/ausocean/segmenter/device"
	"github.com/ausocean/segmenter/device/file"
	"github.com/ausocean/segmenter/device/mjpeg"
	"github.com/ausocean/segmenter/render"
	"github.com/ausocean/segmenter/report"
	"github.com/ausocean/utils/logging"
)

// Current software version.
const version = "v0.1.0"

// Logging configuration.
const (
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
)

// Exit code for usage errors.
const exitUsage = 2

func usage() {
	names := make([]string, 0, len(config.Datasets))
	for n := range config.Datasets {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintf(flag.CommandLine.Output(), "usage: segmenter [flags] <dataset> <path>\n\ndatasets: %s\n\nflags:\n", strings.Join(names, ", "))
	flag.PrintDefaults()
}

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		configPath  = flag.String("config", "", "file of Key=Value configuration lines")
		logPath     = flag.String("log", "", "path of rotated log file, in addition to stderr")
	)
	flag.Usage = usage
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	cfg := map[string]string{
		config.KeyLoop:    "true",
		config.KeyLogging: "Info",
	}
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open config file: %v\n", err)
			os.Exit(1)
		}
		err = readConfig(cfg, f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not read config file: %v\n", err)
			os.Exit(1)
		}
	}
	err := applyArgs(cfg, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(exitUsage)
	}

	var w io.Writer = os.Stderr
	if *logPath != "" {
		// Create lumberjack logger to handle logging to file.
		fileLog := &lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
		defer fileLog.Close()
		w = io.MultiWriter(os.Stderr, fileLog)
	}
	suppress, _ := strconv.ParseBool(cfg[config.KeySuppress])
	log := logging.New(logVerbosity, w, suppress)
	log.Info("starting segmenter", "version", version)

	c := config.Config{Logger: log}
	c.Update(cfg)
	err = c.Validate()
	if err != nil {
		log.Fatal("invalid config", "error", err.Error())
	}
	log.SetLevel(c.LogLevel)
	log.Debug("got config", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, c, log)
	if err != nil {
		log.Fatal("segmentation failed", "error", err.Error())
	}
	log.Info("segmenter finished")
}

// readConfig adds the Key=Value lines of r to cfg. Blank lines and lines
// starting with '#' are ignored.
func readConfig(cfg map[string]string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("line %d: expected Key=Value, got %q", n, line)
		}
		cfg[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return sc.Err()
}

// applyArgs sets the dataset and input path from the positional arguments.
// A path naming an MJPEG file selects MJPEG input.
func applyArgs(cfg map[string]string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	name, path := strings.ToLower(args[0]), args[1]
	if _, ok := config.Datasets[name]; !ok {
		return fmt.Errorf("unknown dataset %q", args[0])
	}
	cfg[config.KeyDataset] = name
	cfg[config.KeyInputPath] = path
	if _, ok := cfg[config.KeyInput]; !ok {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".mjpeg", ".mjpg":
			cfg[config.KeyInput] = "mjpeg"
		default:
			cfg[config.KeyInput] = "dir"
		}
	}
	return nil
}

// source returns the frame source selected by c.
func source(c config.Config, log logging.Logger) device.FrameSource {
	switch c.Input {
	case config.InputMJPEG:
		return mjpeg.New(log)
	default:
		return file.New(log)
	}
}

// renderers returns the outputs selected by c.
func renderers(c config.Config, log logging.Logger) (render.Multi, error) {
	var out render.Multi
	if c.OutputPath != "" {
		f, err := render.NewFile(log, c.OutputPath, false)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if c.Display {
		w, err := render.NewWindow(log)
		if err != nil {
			return nil, fmt.Errorf("could not open display: %w", err)
		}
		out = append(out, w)
	}
	return out, nil
}

// run segments frames until the source is exhausted or ctx is cancelled.
func run(ctx context.Context, c config.Config, log logging.Logger) error {
	det, err := blob.NewDetector(c)
	if err != nil {
		return fmt.Errorf("could not create detector: %w", err)
	}

	src := source(c, log)
	err = src.Set(c)
	if err != nil {
		return fmt.Errorf("could not set %s source: %w", src.Name(), err)
	}
	err = src.Start()
	if err != nil {
		return fmt.Errorf("could not start %s source: %w", src.Name(), err)
	}
	defer src.Stop()

	// Stopping the source releases a Next blocked on a watched directory.
	go func() {
		<-ctx.Done()
		src.Stop()
	}()

	out, err := renderers(c, log)
	if err != nil {
		return err
	}
	defer func() {
		err := out.Close()
		if err != nil {
			log.Error("could not close renderers", "error", err.Error())
		}
	}()

	var lines <-chan struct{}
	if c.Pace {
		lines = newlines(os.Stdin)
	}

	rec := report.NewRecorder(log)
	err = loop(ctx, det, src, out, rec, lines, log)
	rec.Log()
	if c.ReportPath != "" {
		perr := rec.Plot(c.ReportPath)
		if perr != nil {
			log.Error("could not write report plot", "error", perr.Error())
		}
	}
	return err
}

// loop processes frames from src. If lines is not nil each frame waits for
// a value from lines before the next is read.
func loop(ctx context.Context, det *blob.Detector, src device.FrameSource, out render.Renderer, rec *report.Recorder, lines <-chan struct{}, log logging.Logger) error {
	for n := 0; ; n++ {
		if ctx.Err() != nil {
			log.Info("interrupted", "frames", n)
			return nil
		}

		img, err := src.Next()
		switch {
		case err == io.EOF, err != nil && ctx.Err() != nil:
			log.Info("end of input", "frames", n)
			return nil
		case err != nil:
			return fmt.Errorf("could not get frame %d: %w", n, err)
		}

		res, err := det.Process(img)
		if err != nil {
			return err
		}
		log.Info("frame processed",
			"frame", n,
			"components", res.Components,
			"selected", len(res.Survivors),
			"ms", res.Duration.Milliseconds(),
		)
		rec.Add(n, res)

		err = out.Render(img, res)
		if err != nil {
			log.Error("could not render frame", "frame", n, "error", err.Error())
		}

		if lines != nil {
			select {
			case _, ok := <-lines:
				if !ok {
					lines = nil
				}
			case <-ctx.Done():
			}
		}
	}
}

// newlines signals each line read from r, closing the channel at the end
// of r.
func newlines(r io.Reader) <-chan struct{} {
	c := make(chan struct{})
	go func() {
		defer close(c)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			c <- struct{}{}
		}
	}()
	return c
}
