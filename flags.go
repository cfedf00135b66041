package main

import (
  "github.com/pkg/errors"
  "github.com/sirupsen/logrus"
  "gopkg.in/alecthomas/kingpin.v2"
)

// config holds everything a run needs. Every field is set from a flag or its
// MOCKPLOTS_* environment variable.
type config struct {
  outDir   string
  dpi      int
  seed     uint64
  formats  []string
  gnuplot  bool
  logLevel logrus.Level
}

func flags(
  args []string,
) (
  config, error,
) {

  var cfg config
  var level string

  app := kingpin.New("mockplots", "Render placeholder figures for plots that cannot be produced here.")
  app.Flag("out", "directory the figures are written to").
    Default("figure").Envar("MOCKPLOTS_OUT").StringVar(&cfg.outDir)
  app.Flag("dpi", "raster resolution in dots per inch").
    Default("300").Envar("MOCKPLOTS_DPI").IntVar(&cfg.dpi)
  app.Flag("seed", "seed of the EEG scatter sample").
    Default("42").Envar("MOCKPLOTS_SEED").Uint64Var(&cfg.seed)
  app.Flag("format", "additional output format, repeatable: svg, pdf").
    Default("png").Envar("MOCKPLOTS_FORMAT").EnumsVar(&cfg.formats, "png", "svg", "pdf")
  app.Flag("gnuplot", "also render a gnuplot preview of the EEG scatter, needs a build with -tags gnuplot").
    Envar("MOCKPLOTS_GNUPLOT").BoolVar(&cfg.gnuplot)
  app.Flag("log", "log level: debug, info, warn, error").
    Default("warn").Envar("MOCKPLOTS_LOG").EnumVar(&level, "debug", "info", "warn", "error")

  if _, err := app.Parse(args); err != nil {
    return config{}, errors.Wrap(err, "could not parse command line flags")
  }

  if cfg.dpi <= 0 {
    return config{}, errors.Errorf("dpi must be positive, got %d", cfg.dpi)
  }

  lvl, err := logrus.ParseLevel(level)
  if err != nil {
    return config{}, errors.Wrapf(err, "parsing log level %q failed", level)
  }
  cfg.logLevel = lvl
  // PNG is always written, extra formats land next to it.
  cfg.formats = dedupe(append([]string{"png"}, cfg.formats...))

  return cfg, nil
}

// dedupe keeps the first occurrence of every format so a file is never
// written twice in one run.
func dedupe(
  formats []string,
) (
  []string,
) {

  seen := map[string]bool{}
  var out []string
  for _, f := range formats {
    if !seen[f] {
      seen[f] = true
      out = append(out, f)
    }
  }

  return out
}
