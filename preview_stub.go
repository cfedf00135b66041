//go:build !gnuplot

package main

import "github.com/pkg/errors"

// errNoGnuplot is returned when the binary was built without gnuplot support.
var errNoGnuplot = errors.New("gnuplot preview not built in, rebuild with -tags gnuplot")

func gnuplotPreview(
  dir string,
  seed uint64,
) (
  string, error,
) {

  return "", errNoGnuplot
}
