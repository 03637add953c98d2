package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"github.com/rfhold/partpick/internal/catalog"
	"github.com/rfhold/partpick/internal/config"
	"github.com/rfhold/partpick/internal/telemetry"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const defaultLogFile = "partpick.log"

// cliFlags holds parsed command-line arguments
type cliFlags struct {
	configPath string
	backendURL string
	region     string
	timeout    time.Duration
	startType  string
	checkPath  string
	logFile    string
	debug      bool
	showVer    bool
	update     bool
	help       bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, *pflag.FlagSet, error) {
	fs := pflag.NewFlagSet("partpick", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{}
	fs.StringVarP(&f.configPath, "config", "c", "", "Read configuration from `path` instead of the user config dir")
	fs.StringVarP(&f.backendURL, "backend", "b", "", "Backend base `url` (overrides "+config.EnvBackendURL+")")
	fs.StringVarP(&f.region, "region", "r", "", "PCPartPicker `region` for part links, e.g. us, uk, de")
	fs.DurationVar(&f.timeout, "timeout", 0, "Per-request timeout (default 10s)")
	fs.StringVarP(&f.startType, "type", "t", "", "Component `type` to browse first")
	fs.StringVar(&f.checkPath, "check", "", "Evaluate the build in `file` and print a report instead of starting the TUI")
	fs.StringVar(&f.logFile, "log-file", "", "Write debug logs to `path` (default "+defaultLogFile+" when --debug)")
	fs.BoolVarP(&f.debug, "debug", "d", false, "Enable debug logging")
	fs.BoolVarP(&f.showVer, "version", "V", false, "Print version information")
	fs.BoolVarP(&f.update, "update", "u", false, "Check for a newer release")
	fs.BoolVarP(&f.help, "help", "h", false, "Show this help message")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: partpick [flags]\n\n")
		fmt.Fprintf(stderr, "Assemble a PC build from the parts catalog and check it for compatibility.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  partpick                          # Start the TUI against %s\n", config.DefaultBackendURL)
		fmt.Fprintf(stderr, "  partpick -b http://parts:8000     # Use another backend\n")
		fmt.Fprintf(stderr, "  partpick --check build.yaml       # Exit 0 if compatible, 2 if not\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return f, fs, nil
}

func checkUpdate(currentVer string, stdout io.Writer) {
	githubTag := &latest.GithubTag{
		Owner:      "rfhold",
		Repository: "partpick",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		fmt.Fprintf(stdout, "Could not check for updates: %v\n", err)
		return
	}
	if res.Outdated {
		fmt.Fprintf(stdout, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintln(stdout, "Download it from https://github.com/rfhold/partpick/releases")
		return
	}
	fmt.Fprintf(stdout, "You are using the latest version: %s\n", currentVer)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, fs, err := parseFlags(args, stderr)
	if err != nil {
		return exitError
	}
	if flags.help {
		fs.Usage()
		return exitValid
	}
	if flags.showVer {
		fmt.Fprintf(stdout, "partpick version %s\n", version)
		return exitValid
	}
	if flags.update {
		checkUpdate(version, stdout)
		return exitValid
	}

	cfg, _, err := config.Load(config.Options{Path: flags.configPath})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if err := cfg.Apply(config.Overrides{
		BackendURL: flags.backendURL,
		Region:     flags.region,
		Timeout:    flags.timeout,
		Debug:      flags.debug,
	}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	var startType catalog.ComponentType
	if flags.startType != "" {
		startType, err = catalog.ParseComponentType(flags.startType)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interactive := flags.checkPath == ""
	logWriter, closeLog, err := openLogWriter(cfg.Debug, interactive, flags.logFile, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer closeLog()

	telemetry.SetVersion(version)
	tel, err := telemetry.Setup(ctx, telemetry.Options{Debug: cfg.Debug, LogWriter: logWriter})
	if err != nil {
		fmt.Fprintf(stderr, "Warning: telemetry disabled: %v\n", err)
		tel = telemetry.NewNoop()
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(stderr, "Warning: telemetry shutdown: %v\n", err)
		}
	}()

	deps, err := NewProductionDependencies(cfg, tel.Logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	tel.Logger.Debug("starting",
		"version", version,
		"backend", cfg.BackendURL,
		"region", cfg.Region,
		"timeout", cfg.Timeout.String(),
		"exporting", tel.Exporting())

	if !interactive {
		return runCheck(ctx, flags.checkPath, cfg.Region, deps, stdout, stderr)
	}

	appCtx := AppContext{
		BackendURL: cfg.BackendURL,
		Region:     cfg.Region,
		StartType:  startType,
	}
	p := tea.NewProgram(initialModel(ctx, appCtx, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitValid
}

// openLogWriter picks where local debug logs go. The TUI owns the terminal,
// so interactive debug logs default to a file.
func openLogWriter(debug, interactive bool, path string, stderr io.Writer) (io.Writer, func(), error) {
	if !debug {
		return nil, func() {}, nil
	}
	if path == "" && !interactive {
		return stderr, func() {}, nil
	}
	if path == "" {
		path = defaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
