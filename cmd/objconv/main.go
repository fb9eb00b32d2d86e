// objconv converts a Wavefront OBJ file into a .ddm engine mesh.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/ddm-converter/internal/config"
	"github.com/Faultbox/ddm-converter/internal/converter"
	"github.com/Faultbox/ddm-converter/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()
	os.Exit(run(config.Args(), os.Stdout, os.Stderr))
}

// run performs one conversion and returns the process exit code. Anything
// other than exactly one input path is a no-op.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 && config.WriteConfigPath() == "" {
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(stderr, "Error writing config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Config written: %s\n", path)
	}

	if len(args) != 1 {
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	return convert(args[0], cfg, stdout, stderr)
}

func convert(input string, cfg *config.Config, stdout, stderr io.Writer) int {
	importer := converter.NewImporter(cfg.ImportOptions(), logger.Log)

	res, err := importer.ImportFile(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	res.Stats.Print(stdout)

	if err := os.MkdirAll(cfg.Export.OutputDir, 0755); err != nil {
		fmt.Fprintf(stderr, "Error creating directory: %v\n", err)
		return 1
	}

	out, err := converter.Export(res, cfg.Export.OutputDir, cfg.DDMOptions())
	if err != nil {
		logger.Error("export failed", zap.String("mesh", res.Mesh.Name), zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("mesh exported", zap.String("path", out))
	fmt.Fprintf(stdout, "Exported: %s\n", out)
	return 0
}
