package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagOut         = flag.String("out", "", "Output directory for .ddm files")
	flagMarker      = flag.String("marker", "", "Two-character line tag that starts a new sub-mesh")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Export.OutputDir = *flagOut
	}
	if *flagMarker != "" {
		cfg.Import.GroupMarker = *flagMarker
	}
}
