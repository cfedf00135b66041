//go:build gnuplot

package main

import (
  "path/filepath"

  "github.com/Arafatk/glot"
  "github.com/pkg/errors"
)

var sampleColorNames = []string{"red", "blue", "green", "orange"}

// gnuplotPreview renders the EEG scatter through gnuplot, one point group per
// color category, next to the gonum rendering. It needs a gnuplot binary on
// PATH; glot refuses to load without one, hence the build tag.
func gnuplotPreview(
  dir string,
  seed uint64,
) (
  string, error,
) {

  persist := false
  debug := false
  plot, err := glot.NewPlot(2, persist, debug)
  if err != nil {
    return "", errors.Wrap(err, "starting gnuplot")
  }
  defer plot.Close()

  for cat, group := range groupByCategory(drawSample(seed, samplePoints)) {
    if len(group[0]) == 0 {
      continue
    }
    if err := plot.AddPointGroup(sampleColorNames[cat], "points", group); err != nil {
      return "", errors.Wrapf(err, "adding %s points", sampleColorNames[cat])
    }
  }

  if err := plot.SetTitle("plot_PCA_raw_EEG_mouse - EEG Latent Space Visualization"); err != nil {
    return "", errors.Wrap(err, "setting title")
  }
  if err := plot.SetXrange(-4, 4); err != nil {
    return "", errors.Wrap(err, "setting x range")
  }
  if err := plot.SetYrange(-4, 4); err != nil {
    return "", errors.Wrap(err, "setting y range")
  }

  path := filepath.Join(dir, "advanced_2_gnuplot.png")
  if err := plot.SavePlot(path); err != nil {
    return "", errors.Wrapf(err, "saving %s", path)
  }

  return path, nil
}
