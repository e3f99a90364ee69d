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
)

// Frames generates n rotated copies of the image, evenly spaced over a
// full clockwise turn. Frame i is rotated by i * 360/n degrees, always
// from the source image, so the first frame is the unrotated image and
// one further step would coincide with it.
func Frames(src *image.NRGBA, n int) ([]*image.NRGBA, error) {
	if n < 1 {
		return nil, fmt.Errorf("frame count must be at least 1 (%d)", n)
	}
	step := 360 / float64(n)
	frames := make([]*image.NRGBA, n)
	for i := range frames {
		frames[i] = Rotate(src, float64(i)*step)
	}
	return frames, nil
}
