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

// mklogo draws a placeholder logo on a transparent canvas, for trying
// out the animator without a real logo to hand.

package main

import (
	"flag"
	"log"
	"math"

	"github.com/fogleman/gg"

	"github.com/aamcrae/spingif/spin"
)

var size = flag.Int("size", 256, "Canvas size in pixels (square)")
var output = flag.String("output", "logo.png", "Output image (png, jpg, gif)")

func init() {
	flag.Parse()
}

func main() {
	s := float64(*size)
	c := gg.NewContext(*size, *size)
	cx, cy := s/2, s/2
	// Disc with a contrasting ring and a marker dot so rotation is
	// visible in the animation.
	c.SetRGBA(0.13, 0.38, 0.68, 1)
	c.DrawCircle(cx, cy, s*0.42)
	c.Fill()
	c.SetRGBA(0.95, 0.77, 0.06, 1)
	c.SetLineWidth(s * 0.04)
	c.DrawCircle(cx, cy, s*0.34)
	c.Stroke()
	c.SetRGBA(0.9, 0.24, 0.18, 1)
	c.DrawCircle(cx+s*0.34*math.Cos(-math.Pi/2), cy+s*0.34*math.Sin(-math.Pi/2), s*0.07)
	c.Fill()
	if err := spin.SaveImage(*output, c.Image()); err != nil {
		log.Fatalf("%s: %v", *output, err)
	}
}
