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
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"strings"
)

// Read an image from a file.
func ReadImage(name string) (image.Image, error) {
	inf, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	defer inf.Close()
	in, _, err := image.Decode(inf)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return in, nil
}

// Save the image, using the suffix to select the type of image.
func SaveImage(name string, img image.Image) error {
	of, err := os.Create(name)
	if err != nil {
		return err
	}
	defer of.Close()
	if strings.HasSuffix(name, "png") {
		return png.Encode(of, img)
	} else if strings.HasSuffix(name, "jpg") {
		return jpeg.Encode(of, img, nil)
	} else if strings.HasSuffix(name, "gif") {
		return gif.Encode(of, img, nil)
	} else {
		return fmt.Errorf("%s: unknown image format", name)
	}
}

// Normalize converts the image to NRGBA so that every pixel carries
// an alpha channel. An image that is already NRGBA is returned unchanged.
func Normalize(in image.Image) *image.NRGBA {
	if img, ok := in.(*image.NRGBA); ok {
		return img
	}
	b := in.Bounds()
	img := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, in.At(x, y))
		}
	}
	return img
}
