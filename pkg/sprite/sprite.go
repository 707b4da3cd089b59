// Package sprite holds texture pixels in memory between reading the source
// image and writing it into the resource pack.
package sprite

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/arthur-debert/woah/pkg/types"
)

// Sprite is an RGBA pixel buffer. It is never modified after creation.
type Sprite struct {
	image *image.RGBA
}

// FromImage copies img into a new sprite.
func FromImage(img image.Image) *Sprite {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return &Sprite{image: rgba}
}

// Read decodes the image at path. PNG, JPEG, GIF, BMP, TIFF and WebP are
// understood.
func Read(fsys types.FS, path string) (*Sprite, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read image %s", path).
			WithDetail("path", path)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrData, "cannot decode image %s", path).
			WithDetail("path", path)
	}
	return FromImage(img), nil
}

// Save encodes the sprite as PNG at path.
func (s *Sprite) Save(fsys types.FS, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.image); err != nil {
		return errors.Wrapf(err, errors.ErrData, "cannot encode image %s", path)
	}
	if err := fsys.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write image %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Bounds returns the sprite dimensions.
func (s *Sprite) Bounds() image.Rectangle {
	return s.image.Bounds()
}

// Image returns a copy of the pixel buffer.
func (s *Sprite) Image() *image.RGBA {
	out := image.NewRGBA(s.image.Bounds())
	copy(out.Pix, s.image.Pix)
	return out
}

// Clone returns an independent copy.
func (s *Sprite) Clone() *Sprite {
	return &Sprite{image: s.Image()}
}
