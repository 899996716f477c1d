package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagModel       = flag.String("model", "", "Model file (.glb, .gltf, .obj); empty shows the cube")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
	flagSnapshot    = flag.String("snapshot", "", "Render one frame to this PNG and exit")
	flagStep        = flag.Int("step", -1, "Clock step to render in snapshot mode")
	flagWidth       = flag.Int("width", 0, "Snapshot width")
	flagHeight      = flag.Int("height", 0, "Snapshot height")
	flagRaster      = flag.String("raster", "", "Snapshot rasterizer: gg or fb")
	flagFPSLimit    = flag.Int("fps-limit", -1, "Terminal frame cap, 0 = uncapped")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// SnapshotPath returns the PNG path given with -snapshot.
func SnapshotPath() string {
	return *flagSnapshot
}

// WriteConfigPath returns the path given with -write-config.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagModel != "" {
		cfg.Model.Path = *flagModel
	} else if flag.NArg() > 0 {
		cfg.Model.Path = flag.Arg(0)
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.FPS.Show = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagStep >= 0 {
		cfg.Snapshot.Step = *flagStep
	}
	if *flagWidth > 0 {
		cfg.Snapshot.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Snapshot.Height = *flagHeight
	}
	if *flagRaster != "" {
		cfg.Snapshot.Raster = *flagRaster
	}
	if *flagFPSLimit >= 0 {
		cfg.Terminal.FPSLimit = *flagFPSLimit
	}
}
