package main

import (
  "bytes"
  "image/color"
  "image/png"
  "math"
  "os"
  "path/filepath"

  "codeberg.org/go-pdf/fpdf"
  "github.com/pkg/errors"
  "github.com/sirupsen/logrus"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
  "gonum.org/v1/plot/vg/vgimg"
)

// ensureDir creates path and any missing parents. An existing directory is
// fine.
func ensureDir(
  path string,
) (
  error,
) {

  if err := os.MkdirAll(path, 0755); err != nil {
    return errors.Wrapf(err, "creating output directory %s", path)
  }

  return nil
}

// saveFigure writes fig into dir once per format, overwriting earlier files.
// PNG output is rendered at dpi and cropped to its content.
func saveFigure(
  fig mockFigure,
  dir string,
  dpi int,
  formats []string,
) (
  error,
) {

  for _, format := range formats {
    path := filepath.Join(dir, fig.file+"."+format)

    var data []byte
    var err error
    switch format {
    case "png":
      data, err = renderPNG(fig, dpi)
    case "pdf":
      data, err = renderPDF(fig, dpi)
    default:
      data, err = renderVector(fig, format)
    }
    if err != nil {
      return errors.Wrapf(err, "rendering %s", path)
    }

    if err := os.WriteFile(path, data, 0644); err != nil {
      return errors.Wrapf(err, "writing %s", path)
    }

    logrus.WithFields(logrus.Fields{
      "file":  path,
      "bytes": len(data),
    }).Debug("figure written")
  }

  return nil
}

// figureMargin is left blank around every figure so text drawn flush with the
// plot edges, the title and the caption, stays on the canvas.
const figureMargin = 0.2 * vg.Inch

func drawFigure(
  fig mockFigure,
  c vg.CanvasSizer,
) (
  error,
) {

  dc := draw.Crop(draw.New(c), figureMargin, -figureMargin, figureMargin, -figureMargin)

  return fig.draw(dc)
}

func renderPNG(
  fig mockFigure,
  dpi int,
) (
  []byte, error,
) {

  img := vgimg.NewWith(
    vgimg.UseWH(fig.width, fig.height),
    vgimg.UseDPI(dpi),
    vgimg.UseBackgroundColor(color.White),
  )

  if err := drawFigure(fig, img); err != nil {
    return nil, err
  }

  // 0.1 in of margin around the drawn content
  pad := int(math.Round(0.1 * float64(dpi)))
  cropped := cropToContent(img.Image(), color.White, pad)

  var buf bytes.Buffer
  if err := png.Encode(&buf, cropped); err != nil {
    return nil, errors.Wrap(err, "encoding PNG")
  }

  return withDPI(buf.Bytes(), dpi)
}

func renderVector(
  fig mockFigure,
  format string,
) (
  []byte, error,
) {

  c, err := draw.NewFormattedCanvas(fig.width, fig.height, format)
  if err != nil {
    return nil, errors.Wrapf(err, "creating %s canvas", format)
  }

  if err := drawFigure(fig, c); err != nil {
    return nil, err
  }

  var buf bytes.Buffer
  if _, err := c.WriteTo(&buf); err != nil {
    return nil, errors.Wrapf(err, "encoding %s", format)
  }

  return buf.Bytes(), nil
}

// renderPDF places the cropped PNG rendering on a page of the same size.
// gonum's PDF canvas cannot register the bold and italic Liberation faces the
// figures use, so the page carries the raster instead.
func renderPDF(
  fig mockFigure,
  dpi int,
) (
  []byte, error,
) {

  raster, err := renderPNG(fig, dpi)
  if err != nil {
    return nil, err
  }

  cfg, err := png.DecodeConfig(bytes.NewReader(raster))
  if err != nil {
    return nil, errors.Wrap(err, "reading PNG size")
  }
  w := float64(cfg.Width) / float64(dpi)
  h := float64(cfg.Height) / float64(dpi)

  doc := fpdf.NewCustom(&fpdf.InitType{
    UnitStr: "in",
    Size:    fpdf.SizeType{Wd: w, Ht: h},
  })
  doc.SetMargins(0, 0, 0)
  doc.SetAutoPageBreak(false, 0)
  doc.AddPage()

  opts := fpdf.ImageOptions{ImageType: "PNG"}
  doc.RegisterImageOptionsReader(fig.file, opts, bytes.NewReader(raster))
  doc.ImageOptions(fig.file, 0, 0, w, h, false, opts, 0, "")

  var buf bytes.Buffer
  if err := doc.Output(&buf); err != nil {
    return nil, errors.Wrap(err, "encoding pdf")
  }

  return buf.Bytes(), nil
}
