package main

import (
  "bytes"
  "encoding/binary"
  "hash/crc32"
  "image"
  "image/color"
  "math"

  "github.com/pkg/errors"
  xdraw "golang.org/x/image/draw"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

// cropToContent trims every border row and column that is entirely bg, then
// adds back pad pixels on each side where the image allows. A blank image is
// returned unchanged.
func cropToContent(
  img image.Image,
  bg color.Color,
  pad int,
) (
  image.Image,
) {

  b := img.Bounds()
  content := contentTester(img, bg)

  minX, minY := b.Max.X, b.Max.Y
  maxX, maxY := b.Min.X-1, b.Min.Y-1

  for y := b.Min.Y; y < b.Max.Y; y++ {
    for x := b.Min.X; x < b.Max.X; x++ {
      if !content(x, y) {
        continue
      }
      if x < minX {
        minX = x
      }
      if x > maxX {
        maxX = x
      }
      if y < minY {
        minY = y
      }
      if y > maxY {
        maxY = y
      }
    }
  }

  if maxX < minX {
    return img
  }

  r := image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad).Intersect(b)
  dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
  xdraw.Copy(dst, image.Point{}, img, r, xdraw.Src, nil)

  return dst
}

// contentTester reports whether the pixel at (x, y) differs from bg.
func contentTester(
  img image.Image,
  bg color.Color,
) (
  func(x, y int) bool,
) {

  br, bgr, bb, ba := bg.RGBA()

  if rgba, ok := img.(*image.RGBA); ok {
    want := [4]uint8{uint8(br >> 8), uint8(bgr >> 8), uint8(bb >> 8), uint8(ba >> 8)}
    return func(x, y int) bool {
      i := rgba.PixOffset(x, y)
      return rgba.Pix[i] != want[0] || rgba.Pix[i+1] != want[1] || rgba.Pix[i+2] != want[2] || rgba.Pix[i+3] != want[3]
    }
  }

  return func(x, y int) bool {
    r, g, b, a := img.At(x, y).RGBA()
    return r != br || g != bgr || b != bb || a != ba
  }
}

// withDPI inserts a pHYs chunk recording dpi right after the IHDR chunk of
// an encoded PNG.
func withDPI(
  encoded []byte,
  dpi int,
) (
  []byte, error,
) {

  // signature, then IHDR: length, type, 13 bytes of data, crc
  const ihdrEnd = len(pngSignature) + 4 + 4 + 13 + 4

  if len(encoded) < ihdrEnd || string(encoded[:len(pngSignature)]) != pngSignature {
    return nil, errors.New("withDPI: not a PNG stream")
  }
  if string(encoded[12:16]) != "IHDR" {
    return nil, errors.New("withDPI: PNG does not start with IHDR")
  }

  ppm := uint32(math.Round(float64(dpi) / 0.0254))

  chunk := make([]byte, 4+4+9+4)
  binary.BigEndian.PutUint32(chunk[0:], 9)
  copy(chunk[4:], "pHYs")
  binary.BigEndian.PutUint32(chunk[8:], ppm)
  binary.BigEndian.PutUint32(chunk[12:], ppm)
  chunk[16] = 1 // unit: metre
  binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))

  var out bytes.Buffer
  out.Grow(len(encoded) + len(chunk))
  out.Write(encoded[:ihdrEnd])
  out.Write(chunk)
  out.Write(encoded[ihdrEnd:])

  return out.Bytes(), nil
}
