//go:build !gnuplot

package main

import (
  "bytes"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestRunWithoutGnuplot(t *testing.T) {
  t.Setenv("PATH", "")

  dir := t.TempDir()
  cfg := testConfig(dir)
  cfg.gnuplot = true

  var out bytes.Buffer
  require.NoError(t, run(cfg, &out))

  assert.Contains(t, out.String(), "All mock plots created successfully!")
  assert.Equal(t, wantFiles, listFiles(t, dir))

  _, err := gnuplotPreview(dir, 42)
  assert.ErrorIs(t, err, errNoGnuplot)
}
