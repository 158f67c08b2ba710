// Command fastx reads, rewraps and converts FASTA files.
//
// Usage:
//
//	fastx [flags] wrap IN OUT
//	fastx [flags] export IN OUT
//	fastx [flags] import IN OUT
//	fastx [flags] count IN
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kentwait/fastrust/config"
)

// version can be overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var (
	flagConfig  = ""
	flagWidth   = 0
	flagFormat  = ""
	flagVerbose = false
	flagVersion = false
)

func init() {
	flag.StringVar(&flagConfig, "config", flagConfig,
		"path to a JSON config file (default ./"+config.DefaultPath+")")
	flag.IntVar(&flagWidth, "width", flagWidth,
		"sequence line width; -1 disables wrapping (default from config, 60)")
	flag.StringVar(&flagFormat, "format", flagFormat,
		"record format for export and import: json or msgpack")
	flag.BoolVar(&flagVerbose, "verbose", flagVerbose,
		"enable debug logging")
	flag.BoolVar(&flagVersion, "version", flagVersion,
		"print version and exit")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [flags] wrap|export|import IN OUT\n"+
			"       %s [flags] count IN\n",
		os.Args[0], os.Args[0])
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Parse()
	if flagVersion {
		fmt.Println("fastx", version)
		return
	}
	if flag.NArg() < 1 {
		flag.Usage()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Fatal("cannot load config", "err", err)
	}

	// Flags override config values, but only when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.LineWidth = flagWidth
		case "format":
			cfg.Format = flagFormat
		}
	})

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	logger.Debug("loaded config",
		"config", flagConfig, "line_width", cfg.LineWidth,
		"format", cfg.Format, "log_file", cfg.LogFile)

	if err := run(logger, cfg, flag.Args()); err != nil {
		logger.Fatal(flag.Arg(0)+" failed", "err", err)
	}
}

// newLogger builds a logger on stderr, also writing to the configured log
// file when it can be opened.
func newLogger(cfg *config.Config) (*log.Logger, func()) {
	var out io.Writer = os.Stderr
	var logFile *os.File
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile,
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = io.MultiWriter(os.Stderr, f)
			logFile = f
		}
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "fastx",
	})
	logger.SetLevel(logLevel(logger, cfg.LogLevel))
	if cfg.LogFile != "" && logFile == nil {
		logger.Warn("log_file could not be opened; logging to stderr only",
			"path", cfg.LogFile)
	}
	return logger, func() {
		if logFile != nil {
			_ = logFile.Close()
			logFile = nil
		}
	}
}

func logLevel(logger *log.Logger, name string) log.Level {
	if flagVerbose {
		return log.DebugLevel
	}
	switch strings.ToLower(name) {
	case "debug":
		return log.DebugLevel
	case "info", "":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	logger.Warn("unknown log_level in config, defaulting to info",
		"provided", name)
	return log.InfoLevel
}

// run executes the command named by args[0].
func run(logger *log.Logger, cfg *config.Config, args []string) error {
	cmd, args := args[0], args[1:]
	want := 2
	if cmd == "count" {
		want = 1
	}
	if len(args) != want {
		return fmt.Errorf("%s expects %d file arguments, got %d",
			cmd, want, len(args))
	}

	switch cmd {
	case "wrap":
		return wrapFile(logger, cfg, args[0], args[1])
	case "export":
		return exportFile(logger, cfg, args[0], args[1])
	case "import":
		return importFile(logger, cfg, args[0], args[1])
	case "count":
		return countFile(logger, os.Stdout, args[0])
	}
	return fmt.Errorf("unknown command '%s'", cmd)
}
