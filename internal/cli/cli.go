package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/efxbuild/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app
// config, a boolean indicating the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("efxbuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
efxbuild - Efinity build artifact generator and toolchain driver.

Usage:
  efxbuild [options] [DESIGN_PATH]

Arguments:
  DESIGN_PATH
    Path to a single .hcl design file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	designFlag := flagSet.String("design", "", "Path to the design file or directory.")
	dFlag := flagSet.String("d", "", "Path to the design file or directory (shorthand).")
	outFlag := flagSet.String("out", "build", "Directory artifacts are generated into.")
	pinMapFlag := flagSet.String("pinmap", "", "Path to a YAML board pin map.")
	hdlFlag := flagSet.String("hdl", "", "Path to the elaborated HDL to wrap as the design source.")
	debugHDLFlag := flagSet.String("debug-hdl", "", "Path to the debug variant of the elaborated HDL.")
	generateOnlyFlag := flagSet.Bool("generate-only", false, "Write artifacts without running the toolchain.")
	verboseFlag := flagSet.Bool("verbose", false, "Pass the external tools' stdout through.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *designFlag != "" {
		path = *designFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Design path determined.", "path", path)

	if path == "" {
		slog.Debug("No design path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		DesignPath:   path,
		PinMapPath:   *pinMapFlag,
		OutDir:       *outFlag,
		HDLPath:      *hdlFlag,
		DebugHDLPath: *debugHDLFlag,
		GenerateOnly: *generateOnlyFlag,
		Verbose:      *verboseFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
