package main

import (
  "fmt"
  "io"
  "os"

  "github.com/sirupsen/logrus"
)

func main() {

  cfg, err := flags(os.Args[1:])
  if err != nil {
    logrus.Fatalf("%+v", err)
  }

  logrus.SetLevel(cfg.logLevel)

  if err := run(cfg, os.Stdout); err != nil {
    logrus.Fatalf("%+v", err)
  }
}

// run writes every mock figure into cfg.outDir in order. The first failure
// stops the run; figures already written stay on disk.
func run(
  cfg config,
  out io.Writer,
) (
  error,
) {

  if err := ensureDir(cfg.outDir); err != nil {
    return err
  }

  fmt.Fprintln(out, "Creating mock plot visualizations...")

  for _, fig := range mockFigures(cfg.seed) {
    if err := saveFigure(fig, cfg.outDir, cfg.dpi, cfg.formats); err != nil {
      return err
    }
    fmt.Fprintf(out, "✓ Created %s.png (%s)\n", fig.file, fig.label)
  }

  if cfg.gnuplot {
    path, err := gnuplotPreview(cfg.outDir, cfg.seed)
    if err != nil {
      logrus.Warnf("skipping gnuplot preview: %v", err)
    } else {
      logrus.Infof("gnuplot preview written to %s", path)
    }
  }

  fmt.Fprintln(out, "\nAll mock plots created successfully!")

  return nil
}
