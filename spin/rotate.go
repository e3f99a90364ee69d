// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spin

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate the image clockwise about its centre by the angle (in degrees),
// resampling with a bicubic filter. The canvas keeps the size of the
// source, so the corners of a non-square image are cropped; pixels the
// rotated image does not cover are left fully transparent.
func Rotate(src *image.NRGBA, angle float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	if angle == 0 {
		draw.Draw(dst, b, src, b.Min, draw.Src)
		return dst
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	// Rotation about (cx, cy); with y growing downwards a positive
	// angle turns the image clockwise.
	m := f64.Aff3{
		cos, -sin, cx - cx*cos + cy*sin,
		sin, cos, cy - cx*sin - cy*cos,
	}
	xdraw.CatmullRom.Transform(dst, m, src, b, xdraw.Src, nil)
	return dst
}
