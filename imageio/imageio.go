// Package imageio loads source textures and saves synthesized images,
// picking the codec from the file extension.
//
// Decoding accepts png, jpeg, gif, bmp and tiff. Encoding supports png,
// jpeg, bmp and tiff.
package imageio

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/gcts/patch"
)

// ErrUnsupported indicates a file extension with no matching codec.
var ErrUnsupported = errors.New("imageio: unsupported image format")

// JPEGQuality is the quality Save uses for jpeg output.
const JPEGQuality = 95

// Format identifies a codec.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// FormatOf maps a path's extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", errors.Wrapf(ErrUnsupported, "extension of %q", path)
	}
}

// Decode reads an image in format f from r.
func Decode(r io.Reader, f Format) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case PNG:
		img, err = png.Decode(r)
	case JPEG:
		img, err = jpeg.Decode(r)
	case GIF:
		img, err = gif.Decode(r)
	case BMP:
		img, err = bmp.Decode(r)
	case TIFF:
		img, err = tiff.Decode(r)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "decode %s", f)
	}
	return img, errors.Wrapf(err, "decode %s", f)
}

// Encode writes img to w in format f. GIF output is not supported.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrUnsupported, "encode %s", f)
	}
	return errors.Wrapf(err, "encode %s", f)
}

// Load decodes the image at path into patch pixels.
func Load(path string) (*patch.Pixels, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "imageio: load")
	}
	defer file.Close()

	img, err := Decode(file, f)
	if err != nil {
		return nil, errors.Wrapf(err, "imageio: load %s", path)
	}
	px, err := patch.FromImage(img)
	return px, errors.Wrapf(err, "imageio: load %s", path)
}

// Save encodes img to path, creating or truncating the file.
func Save(path string, img image.Image) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	if f == GIF {
		return errors.Wrapf(ErrUnsupported, "save %s", path)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "imageio: save")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = errors.Wrapf(cerr, "imageio: save %s", path)
		}
	}()
	return errors.Wrapf(Encode(file, img, f), "imageio: save %s", path)
}
