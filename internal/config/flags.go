package config

import "flag"

// flagFields maps flag names to the config fields they set.
var flagFields = map[string]string{
	"data":           "data_file",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"ui":             "ui",
	"tui-alt-screen": "tui_alt_screen",
	"tui-history":    "tui_history",
	"on-corrupt":     "on_corrupt",
}

// RegisterFlags defines the config flags on fs, bound to cfg.
// Call it after the lower layers have been applied so the defaults shown
// in usage output are the effective values.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.DataFile, "data", cfg.DataFile, "Path to the task data file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, logfmt, json")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Interface: console or tui")
	fs.BoolVar(&cfg.TUIAltScreen, "tui-alt-screen", cfg.TUIAltScreen, "Run the tui on the alternate screen")
	fs.IntVar(&cfg.TUIHistory, "tui-history", cfg.TUIHistory, "Number of exchanges the tui transcript keeps")
	fs.StringVar(&cfg.OnCorrupt, "on-corrupt", cfg.OnCorrupt, "Corrupt data line policy: skip or abort")
}

// parseFlags defines and parses CLI flags.
// If sources is non-nil, it records SourceFlag for each flag given on the command line.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("yapper", flag.ContinueOnError)
	}
	RegisterFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
