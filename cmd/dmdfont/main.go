/*
Command dmdfont generates a bitmap font for DMD LED matrix displays from an
outline font.

	dmdfont [flags]

The font is rendered at the largest point size which fits the target height, packed
into the DMD font table format and written as a C header. Settings are taken from
built-in defaults, an optional environment file (keys DMDFONT_*) and flags, in
this order. Run with -help for a list of flags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/dmdfont/backend/cheader"
	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/dmdfont/core/config"
	"github.com/npillmayer/dmdfont/core/font/otquery"
	"github.com/npillmayer/dmdfont/core/locate/resources"
	"github.com/npillmayer/dmdfont/engine/fontgen"
	"github.com/npillmayer/dmdfont/engine/fonttable"
	"github.com/npillmayer/dmdfont/engine/raster"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'dmdfont.cli'
func tracer() tracing.Trace {
	return tracing.Select("dmdfont.cli")
}

var traceKeys = []string{
	"dmdfont.cli", "dmdfont.config", "dmdfont.repertoire", "dmdfont.font", "dmdfont.resources", "dmdfont.raster",
	"dmdfont.sizing", "dmdfont.packer", "dmdfont.table", "dmdfont.fontgen",
}

const defaultEnvFile = "dmdfont.env"

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	envfile := flag.String("env", "", "Environment file with DMDFONT_* settings (default "+defaultEnvFile+" if present)")
	fontfile := flag.String("font", "", "Font file to use, tried before the configured candidates")
	preview := flag.String("preview", "", "Text to preview with the generated font")
	quiet := flag.Bool("quiet", false, "Do not print the glyph table")
	settings := make(map[string]*string, len(config.Keys))
	for _, key := range config.Keys {
		settings[key] = flag.String(key, "", "Override setting "+key)
	}
	flag.Parse()

	// set up logging
	initTracing(*tlevel)
	tracer().Infof("Trace level is %s", *tlevel)

	cfg, err := configure(*envfile, *fontfile, settings)
	if err != nil {
		fatal(err)
	}
	if err := run(cfg, *preview, *quiet); err != nil {
		fatal(err)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// configure layers defaults, environment file and flags.
func configure(envfile, fontfile string, settings map[string]*string) (*config.Config, error) {
	cfg := config.Default()
	if envfile == "" {
		if _, err := os.Stat(defaultEnvFile); err == nil {
			envfile = defaultEnvFile
		}
	}
	if envfile != "" {
		if err := cfg.LoadEnvFile(envfile); err != nil {
			return nil, err
		}
		tracer().Infof("settings read from %s", envfile)
	}
	flags := testconfig.Conf{}
	for key, v := range settings {
		if *v != "" {
			flags[key] = *v
		}
	}
	if err := cfg.Apply(flags); err != nil {
		return nil, err
	}
	if fontfile != "" {
		cfg.FontCandidates = append([]string{fontfile}, cfg.FontCandidates...)
	}
	return cfg, cfg.Validate()
}

func run(cfg *config.Config, preview string, quiet bool) error {
	f, err := resources.ResolveFont(cfg.FontCandidates)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Using font: %s (%s)", f.Fontname, f.Filepath)
	table, err := fontgen.Repertoire(cfg)
	if err != nil {
		return err
	}
	if cov := otquery.RepertoireCoverage(f, table); !cov.Complete() {
		pterm.Warning.Printfln("Font %s has glyphs for %d of %d characters", f.Fontname, cov.Covered(), cov.Total)
	}
	ras := raster.NewOutlineRasterizer(f, cfg.CanvasSize)
	defer ras.Close()
	ft, report, err := fontgen.Generate(cfg, ras, table)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Best font size: %dpt (fits in %dpx)", report.Metrics.Size, cfg.TargetMaxHeight)
	pterm.Info.Printfln("Font height: %dpx (vert_bytes=%d)", report.Metrics.FontHeight, report.Metrics.VertBytes)
	if err := writeHeader(cfg, f.Filepath, ft); err != nil {
		return err
	}
	pterm.Success.Printfln("Font header written to: %s", cfg.OutputPath)
	if !quiet {
		if err := printSummary(report); err != nil {
			return err
		}
	}
	if preview != "" {
		printPreview(ft, table, preview)
	}
	return nil
}

func writeHeader(cfg *config.Config, fontpath string, ft *fonttable.FontTable) error {
	if dir := filepath.Dir(cfg.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot create output directory %s", dir)
		}
	}
	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create %s", cfg.OutputPath)
	}
	h := cheader.Header{
		ArrayName:    cfg.ArrayName,
		Guard:        cfg.HeaderGuard,
		Title:        cfg.Title,
		Source:       filepath.Base(fontpath),
		Height:       ft.Height,
		FirstChar:    ft.FirstChar,
		CharCount:    ft.CharCount,
		BytesPerLine: cfg.BytesPerLine,
	}
	if err = cheader.Write(out, h, ft.Bytes()); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write %s", cfg.OutputPath)
	}
	return nil
}

func fatal(err error) {
	core.UserError(err)
	os.Exit(core.ExitStatus(err))
}
