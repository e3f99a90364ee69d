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
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the parameters for one animation run.
type Config struct {
	Input  string `yaml:"input"`  // Source image file
	Output string `yaml:"output"` // Animated GIF to write
	Frames int    `yaml:"frames"` // Number of frames in one full turn
	Delay  int    `yaml:"delay"`  // Per-frame delay in milliseconds
	Loop   int    `yaml:"loop"`   // GIF loop count, 0 for infinite
}

const defaultInput = "logo.png"
const defaultOutput = "logo-rotating.gif"
const defaultFrames = 36
const defaultDelay = 50

// DefaultConfig returns a config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Input:  defaultInput,
		Output: defaultOutput,
		Frames: defaultFrames,
		Delay:  defaultDelay,
		Loop:   0,
	}
}

// ReadConfig reads a YAML config file, applying defaults for
// any values not set in the file.
func ReadConfig(name string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(name)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("%s: %v", name, err)
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("%s: %v", name, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Frames < 1 {
		return fmt.Errorf("frames must be at least 1 (%d)", c.Frames)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative (%d)", c.Delay)
	}
	if c.Loop < 0 {
		return fmt.Errorf("loop must not be negative (%d)", c.Loop)
	}
	if len(c.Input) == 0 || len(c.Output) == 0 {
		return fmt.Errorf("input and output files must be set")
	}
	return nil
}
