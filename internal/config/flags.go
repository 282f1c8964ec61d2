package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDuration   = flag.Float64("duration", 0, "Displacement duration in seconds")
	flagNoGravity  = flag.Bool("no-gravity", false, "Skip the gravity scenario")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
	flagDumpConfig = flag.String("dump-config", "", "Write the effective config to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpPath returns the --dump-config destination, or "" if unset.
func DumpPath() string {
	return *flagDumpConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDuration > 0 {
		cfg.Displacement.DurationSecond = *flagDuration
	}
	if *flagNoGravity {
		cfg.Gravity.Enabled = false
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
