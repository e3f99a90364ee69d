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
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// Animation holds a frame sequence ready to be encoded as an animated GIF.
type Animation struct {
	Frames []*image.NRGBA
	Delay  int // Per-frame delay in milliseconds
	Loop   int // Loop count, 0 for infinite
}

// EncodeAll writes the animation as a GIF. Each frame is quantized to a
// 256 colour palette with dithering; the first palette entry is kept
// transparent so rotated corners stay see-through. GIF delays are in
// units of 10ms, so the configured delay is rounded down to that.
func (a *Animation) EncodeAll(w io.Writer) error {
	if len(a.Frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	pal := make(color.Palette, 0, 256)
	pal = append(pal, color.Transparent)
	pal = append(pal, palette.Plan9[:255]...)
	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(a.Frames)),
		Delay:     make([]int, len(a.Frames)),
		LoopCount: a.Loop,
	}
	for i, frame := range a.Frames {
		b := frame.Bounds()
		pm := image.NewPaletted(b, pal)
		draw.FloydSteinberg.Draw(pm, b, frame, b.Min)
		g.Image[i] = pm
		g.Delay[i] = a.Delay / 10
	}
	return gif.EncodeAll(w, g)
}

// Save writes the animation to a file, overwriting any existing file.
func (a *Animation) Save(name string) error {
	of, err := os.Create(name)
	if err != nil {
		return err
	}
	defer of.Close()
	return a.EncodeAll(of)
}
