package app

import "errors"

// Config holds everything an App instance needs to run one build.
type Config struct {
	// DesignPath is a .hcl file or a directory of .hcl files describing
	// the design.
	DesignPath string
	// PinMapPath optionally names a YAML board pin map for connector
	// references.
	PinMapPath string
	// OutDir is where artifacts are generated and the pipeline runs.
	OutDir string
	// HDLPath names the externally elaborated HDL to wrap as the design
	// source; DebugHDLPath optionally names the debug variant.
	HDLPath      string
	DebugHDLPath string

	// GenerateOnly stops after writing artifacts, skipping the pipeline.
	GenerateOnly bool
	// Verbose passes the external tools' stdout through.
	Verbose bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DesignPath == "" {
		return nil, errors.New("DesignPath is a required configuration field and cannot be empty")
	}
	if cfg.OutDir == "" {
		return nil, errors.New("OutDir is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
