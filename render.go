// seehuhn.de/go/hero - a placeholder hero image generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hero

import (
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/hero/raster"
)

// Render paints the scene into a new image of size Width x Height.
//
// The background is copied into every pixel. Each layer is then filled
// with the nonzero winding rule and composited over the image, using the
// pixel coverage as mask. Pixels fully inside an opaque layer take the
// layer colour exactly.
func (s Scene) Render() *image.RGBA {
	bounds := image.Rect(0, 0, s.Width, s.Height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(s.Background), image.Point{}, draw.Src)

	if bounds.Empty() {
		return img
	}

	clip := rect.Rect{URx: float64(s.Width), URy: float64(s.Height)}
	r := raster.NewRasterizer(clip)
	mask := image.NewAlpha(bounds)
	for i, layer := range s.Layers {
		if layer.Shape == nil {
			continue
		}

		r.Reset(clip)
		clear(mask.Pix)
		covered := image.Rectangle{}
		r.FillNonZero(layer.Shape.Path(), func(y, xMin int, coverage []float32) {
			row := mask.Pix[y*mask.Stride+xMin:]
			for j, c := range coverage {
				row[j] = alpha(c)
			}
			covered = covered.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
		})
		if covered.Empty() {
			logger().Debug("layer outside the image", "layer", i)
			continue
		}

		src := image.NewUniform(layer.Color)
		draw.DrawMask(img, covered, src, image.Point{}, mask, covered.Min, draw.Over)
	}
	return img
}

// alpha converts coverage to an 8-bit mask value.
func alpha(c float32) uint8 {
	v := int(c*255 + 0.5)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
