package main

// groupByCategory splits the sample into glot point groups: for every
// category a pair of X and Y slices.
func groupByCategory(
  s eegSample,
) (
  [][][]float64,
) {

  groups := make([][][]float64, len(sampleColors))
  for i := range groups {
    groups[i] = [][]float64{{}, {}}
  }

  for i, pt := range s.points {
    g := groups[s.category[i]]
    g[0] = append(g[0], pt.X)
    g[1] = append(g[1], pt.Y)
    groups[s.category[i]] = g
  }

  return groups
}
