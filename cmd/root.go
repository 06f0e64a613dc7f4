// Package cmd implements the CLI command structure for yapper.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ashleyclx/yapper/internal/calendar"
	"github.com/ashleyclx/yapper/internal/config"
	"github.com/ashleyclx/yapper/internal/logging"
	"github.com/ashleyclx/yapper/internal/parser"
	"github.com/ashleyclx/yapper/internal/storage"
	"github.com/ashleyclx/yapper/internal/tasklist"
	"github.com/ashleyclx/yapper/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Run executes the yapper CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, errOut: os.Stderr})
}

func run(ctx context.Context, args []string, s streams) error {
	fs := flag.NewFlagSet("yapper", flag.ContinueOnError)
	fs.SetOutput(s.errOut)
	fs.Usage = func() {
		printUsage(fs, s.errOut)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, s.out)
		return nil
	}
	if *showVersion {
		return versionCommand(s.out)
	}

	// No args, or a flag first, means "run".
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	cfg := cws.Config
	logger := logging.NewFromConfig(s.errOut, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	a := &app{
		cfg:     cfg,
		sources: cws,
		streams: s,
		logger:  logger,
	}

	switch subcommand {
	case "run":
		return a.runCommand(ctx, remainingArgs, a.cfg.UI)
	case "tui":
		return a.runCommand(ctx, remainingArgs, config.UITUI)
	case "list", "ls":
		return a.listCommand(remainingArgs)
	case "check":
		return a.checkCommand(remainingArgs)
	case "export-ics":
		return a.exportCommand(remainingArgs)
	case "config":
		return a.configCommand(remainingArgs)
	case "version":
		return versionCommand(s.out)
	case "help":
		printUsage(fs, s.out)
		return nil
	default:
		fmt.Fprintf(s.errOut, "Unknown command: %s\n", subcommand)
		printUsage(fs, s.errOut)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	sources *config.ConfigWithSources
	streams
	logger *log.Logger
}

func (a *app) openStore(policy storage.CorruptPolicy) *storage.Store {
	return storage.NewStore(a.cfg.DataFile,
		storage.WithPolicy(policy),
		storage.WithLogger(a.logger),
	)
}

// load reads the data file with the given policy. A corrupt line under
// PolicyAbort and an unreadable file are both returned as errors.
func (a *app) load(policy storage.CorruptPolicy) (*tasklist.TaskList, *storage.Store, storage.LoadReport, error) {
	store := a.openStore(policy)
	list := tasklist.New()
	report, err := store.Load(list)
	return list, store, report, err
}

func (a *app) configuredPolicy() (storage.CorruptPolicy, error) {
	return storage.ParseCorruptPolicy(a.cfg.OnCorrupt)
}

func noArgs(name string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: unexpected arguments: %v", name, args)
	}
	return nil
}

// runCommand loads the list and runs an interactive session until bye.
func (a *app) runCommand(ctx context.Context, args []string, mode string) error {
	if err := noArgs("run", args); err != nil {
		return err
	}
	policy, err := a.configuredPolicy()
	if err != nil {
		return err
	}

	list, store, report, err := a.load(policy)
	switch {
	case errors.Is(err, storage.ErrIO):
		// Already logged; the session starts with an empty list.
	case err != nil:
		return fmt.Errorf("loading %s: %w", a.cfg.DataFile, err)
	}
	a.logger.Info("session starting", "data", a.cfg.DataFile, "tasks", report.Loaded, "skipped", len(report.Skipped), "ui", mode)

	p := parser.New(list, store, parser.WithLogger(a.logger))
	if mode == config.UITUI {
		return ui.RunTUI(ctx, p,
			ui.WithIO(a.in, a.out),
			ui.WithAltScreen(a.cfg.TUIAltScreen),
			ui.WithHistory(a.cfg.TUIHistory),
		)
	}
	return ui.NewSession(p, a.in, a.out, ui.WithSessionLogger(a.logger)).Run(ctx)
}

// listCommand prints the numbered list and exits without saving.
func (a *app) listCommand(args []string) error {
	if err := noArgs("list", args); err != nil {
		return err
	}
	policy, err := a.configuredPolicy()
	if err != nil {
		return err
	}
	list, _, _, err := a.load(policy)
	if err != nil {
		return fmt.Errorf("loading %s: %w", a.cfg.DataFile, err)
	}
	fmt.Fprintln(a.out, list.List())
	return nil
}

// checkCommand reports every corrupt line in the data file.
func (a *app) checkCommand(args []string) error {
	if err := noArgs("check", args); err != nil {
		return err
	}
	_, _, report, err := a.load(storage.PolicySkip)
	if err != nil {
		return fmt.Errorf("loading %s: %w", a.cfg.DataFile, err)
	}

	for _, ce := range report.Skipped {
		fmt.Fprintln(a.out, ce.Error())
	}
	fmt.Fprintf(a.out, "%s: %d task(s) loaded, %d corrupt line(s)\n", a.cfg.DataFile, report.Loaded, len(report.Skipped))
	if len(report.Skipped) > 0 {
		return fmt.Errorf("%w: %d corrupt line(s) in %s", storage.ErrDataCorruption, len(report.Skipped), a.cfg.DataFile)
	}
	return nil
}

// exportCommand writes deadlines and events to an iCalendar file.
func (a *app) exportCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("export-ics: expected one output path, got %d argument(s)", len(args))
	}
	policy, err := a.configuredPolicy()
	if err != nil {
		return err
	}
	list, _, _, err := a.load(policy)
	if err != nil {
		return fmt.Errorf("loading %s: %w", a.cfg.DataFile, err)
	}

	n, err := calendar.NewExporter(calendar.WithLogger(a.logger)).WriteFile(args[0], list)
	if err != nil {
		return fmt.Errorf("export-ics: %w", err)
	}
	fmt.Fprintf(a.out, "Exported %d event(s) to %s\n", n, args[0])
	return nil
}

// configCommand prints the effective configuration, the example file or
// the config schema.
func (a *app) configCommand(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("config: unexpected arguments: %v", args[1:])
	}
	if len(args) == 1 {
		switch args[0] {
		case "example":
			fmt.Fprint(a.out, config.ExampleConfig())
			return nil
		case "schema":
			fmt.Fprint(a.out, config.SchemaJSON())
			return nil
		default:
			return fmt.Errorf("config: unknown argument %q (want example or schema)", args[0])
		}
	}

	fmt.Fprintln(a.out, "Config files:")
	if len(a.sources.Files) == 0 {
		fmt.Fprintln(a.out, "  (none)")
	}
	for _, f := range a.sources.Files {
		fmt.Fprintf(a.out, "  %s\n", f)
	}
	fmt.Fprintln(a.out)

	values := map[string]string{
		"data_file":      a.cfg.DataFile,
		"log_level":      a.cfg.LogLevel,
		"log_format":     a.cfg.LogFormat,
		"log_timestamps": fmt.Sprint(a.cfg.LogTimestamps),
		"log_caller":     fmt.Sprint(a.cfg.LogCaller),
		"ui":             a.cfg.UI,
		"tui_alt_screen": fmt.Sprint(a.cfg.TUIAltScreen),
		"tui_history":    fmt.Sprint(a.cfg.TUIHistory),
		"on_corrupt":     a.cfg.OnCorrupt,
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Values:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-15s %-40s (%s)\n", name, values[name], a.sources.Sources[name])
	}
	return nil
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "yapper version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "yapper - a line-oriented task tracker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  yapper [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                   Start an interactive session (default command)")
	fmt.Fprintln(w, "  tui                   Start the terminal UI session")
	fmt.Fprintln(w, "  list                  Print the task list and exit")
	fmt.Fprintln(w, "  check                 Report corrupt lines in the data file")
	fmt.Fprintln(w, "  export-ics <out.ics>  Export deadlines and events as iCalendar")
	fmt.Fprintln(w, "  config [example|schema]")
	fmt.Fprintln(w, "                        Show the effective configuration")
	fmt.Fprintln(w, "  version               Show version information")
	fmt.Fprintln(w, "  help                  Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session commands:")
	fmt.Fprintln(w, parser.HelpText())
}
