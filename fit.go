package main

import (
  "math"

  "github.com/maorshutman/lm"
  "github.com/pkg/errors"
  "gonum.org/v1/gonum/floats"
  "gonum.org/v1/gonum/stat"
)

// waveFit holds the parameters of amplitude*sin(frequency*t) + offset.
type waveFit struct {
  amplitude float64
  frequency float64
  offset    float64
}

// fitWave fits a sine of roughly the given frequency to y(t). Amplitude and
// offset are seeded from the data.
func fitWave(
  t, y []float64,
  frequency float64,
) (
  waveFit, error,
) {

  if len(t) != len(y) || len(t) < 3 {
    return waveFit{}, errors.Errorf("fitWave: need at least 3 matching samples, got %d and %d", len(t), len(y))
  }

  f := func(dst, guess []float64) {

    amp, freq, off := guess[0], guess[1], guess[2]

    for i := range t {
      dst[i] = amp*math.Sin(freq*t[i]) + off - y[i]
    }
  }

  jacobian := lm.NumJac{Func: f}

  toBeSolved := lm.LMProblem{
    Dim:        3,
    Size:       len(t),
    Func:       f,
    Jac:        jacobian.Jac,
    InitParams: []float64{(floats.Max(y) - floats.Min(y)) / 2, frequency, stat.Mean(y, nil)},
    Tau:        1e-6,
    Eps1:       1e-8,
    Eps2:       1e-8,
  }

  results, err := lm.LM(toBeSolved, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
  if err != nil {
    return waveFit{}, errors.Wrap(err, "fitWave")
  }

  fit := waveFit{amplitude: results.X[0], frequency: results.X[1], offset: results.X[2]}

  // a sin(wt) and -a sin(-wt) are the same wave
  if fit.amplitude < 0 {
    fit.amplitude = -fit.amplitude
    fit.frequency = -fit.frequency
  }

  return fit, nil
}
