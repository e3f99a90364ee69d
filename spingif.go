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

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/aamcrae/spingif/spin"
)

var configFile = flag.String("config", "", "Optional YAML config file")
var input = flag.String("input", "", "Input image (png, jpg, gif)")
var output = flag.String("output", "", "Output animated GIF")
var frames = flag.Int("frames", 0, "Number of frames in one full turn")
var delay = flag.Int("delay", -1, "Per-frame delay in milliseconds")

func init() {
	flag.Parse()
}

func main() {
	conf := spin.DefaultConfig()
	if len(*configFile) > 0 {
		var err error
		conf, err = spin.ReadConfig(*configFile)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
	}
	// Flags override the config file.
	if len(*input) > 0 {
		conf.Input = *input
	}
	if len(*output) > 0 {
		conf.Output = *output
	}
	if *frames > 0 {
		conf.Frames = *frames
	}
	if *delay >= 0 {
		conf.Delay = *delay
	}
	img, err := spin.ReadImage(conf.Input)
	if err != nil {
		log.Fatalf("%s: %v", conf.Input, err)
	}
	f, err := spin.Frames(spin.Normalize(img), conf.Frames)
	if err != nil {
		log.Fatalf("%s: %v", conf.Input, err)
	}
	anim := spin.Animation{Frames: f, Delay: conf.Delay, Loop: conf.Loop}
	if err := anim.Save(conf.Output); err != nil {
		log.Fatalf("%s: %v", conf.Output, err)
	}
	fmt.Printf("Wrote %s: %d frames, %dms/frame, looping\n", conf.Output, conf.Frames, conf.Delay)
}
