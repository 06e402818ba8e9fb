// atlasc compiles a set of sprite images into a packed texture atlas: a
// single PNG sheet plus a JSON manifest describing every sprite's trim
// rect, placement and optional silhouette mesh.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/Faultbox/atlasc/internal/atlas"
	"github.com/Faultbox/atlasc/internal/config"
	"github.com/Faultbox/atlasc/internal/logger"
)

const version = "1.0.0"

var cli struct {
	Input  []string `short:"i" placeholder:"PATH" help:"Input image file, repeatable."`
	Output string   `short:"o" placeholder:"PATH" help:"Output manifest path; the sheet PNG is written next to it."`

	MaxWidth       int  `short:"W" default:"2048" help:"Maximum sheet width."`
	MaxHeight      int  `short:"H" default:"2048" help:"Maximum sheet height."`
	Border         int  `short:"B" default:"2" help:"Transparent border between sprites."`
	Padding        int  `short:"P" default:"1" help:"Padding band inside each sprite's sheet slot."`
	Pot            bool `short:"2" help:"Round final sheet dimensions up to powers of two."`
	Mesh           bool `short:"m" help:"Generate a triangle mesh per sprite."`
	MaxVerts       int  `short:"M" default:"25" help:"Cap on simplified polygon vertex count."`
	AlphaThreshold int  `short:"A" default:"20" help:"Opacity threshold (0..255)."`

	Config   string `short:"c" placeholder:"FILE" help:"YAML build file; flags override its values."`
	DebugDir string `placeholder:"DIR" help:"Dump intermediate masks as BMP files into this directory."`
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Console log level."`
	LogFile  string `placeholder:"PATH" help:"Also log to this file, with rotation."`
	Quiet    bool   `short:"q" help:"Only log errors."`

	Version kong.VersionFlag `short:"V" help:"Print version and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("atlasc"),
		kong.Description("Compiles sprite images into a packed texture atlas with an optional silhouette mesh per sprite."),
		kong.Vars{"version": fmt.Sprintf("atlasc v%s\nhttps://github.com/Faultbox/atlasc", version)},
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fatal(err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}

	sources, err := atlas.LoadSources(cfg.Inputs)
	if err != nil {
		fatal(err)
	}

	sheet, err := atlas.Build(cfg.Options(), sources)
	if err != nil {
		fatal(err)
	}
	if err := sheet.WriteFiles(cfg.Output); err != nil {
		fatal(err)
	}

	logger.Info("atlas written",
		zap.String("manifest", cfg.Output),
		zap.String("image", atlas.ImagePath(cfg.Output)))
	logger.Sync()
}

// applyFlags overlays CLI values onto the configuration. Flags left at their
// documented default keep whatever the build file said.
func applyFlags(cfg *config.Config) {
	def := config.Default()

	cfg.Inputs = append(cfg.Inputs, cli.Input...)
	if cli.Output != "" {
		cfg.Output = cli.Output
	}
	if cli.MaxWidth != def.Atlas.MaxWidth {
		cfg.Atlas.MaxWidth = cli.MaxWidth
	}
	if cli.MaxHeight != def.Atlas.MaxHeight {
		cfg.Atlas.MaxHeight = cli.MaxHeight
	}
	if cli.Border != def.Atlas.Border {
		cfg.Atlas.Border = cli.Border
	}
	if cli.Padding != def.Atlas.Padding {
		cfg.Atlas.Padding = cli.Padding
	}
	if cli.Pot {
		cfg.Atlas.PowerOfTwo = true
	}
	if cli.Mesh {
		cfg.Atlas.Mesh = true
	}
	if cli.MaxVerts != def.Atlas.MaxVerts {
		cfg.Atlas.MaxVerts = cli.MaxVerts
	}
	if cli.AlphaThreshold != def.Atlas.AlphaThreshold {
		cfg.Atlas.AlphaThreshold = cli.AlphaThreshold
	}
	if cli.DebugDir != "" {
		cfg.Atlas.DebugDir = cli.DebugDir
	}
	if cli.LogLevel != def.Logging.Level {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.Logging.LogFile = cli.LogFile
	}
	if cli.Quiet {
		cfg.Logging.Level = "error"
	}
}

// fatal prints one line for the failure and exits non-zero. No partial
// outputs exist at any call site.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "atlasc: %s\n", err)
	logger.Sync()
	os.Exit(255)
}
