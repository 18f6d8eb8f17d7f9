package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

var (
	ErrUnreadableSource = errors.New("source image could not be read")
)

func init() {
	image.RegisterFormat("jpeg", "jpeg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("jpg", "jpg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "png", png.Decode, png.DecodeConfig)
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// LoadImage decodes any registered image format into an 8-bit non-premultiplied raster. Non-premultiplied storage
// keeps every channel value intact through a PNG round trip, including for pixels that are not fully opaque
func LoadImage(r io.Reader) (*image.NRGBA, string, error) {
	srcImage, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnreadableSource, err)
	}
	return ToNRGBA(srcImage), format, nil
}

// ToNRGBA copies img into a new *image.NRGBA with the same bounds
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		cloned := image.NewNRGBA(nrgba.Bounds())
		for y := nrgba.Rect.Min.Y; y < nrgba.Rect.Max.Y; y++ {
			srcOffset := nrgba.PixOffset(nrgba.Rect.Min.X, y)
			dstOffset := cloned.PixOffset(cloned.Rect.Min.X, y)
			rowLen := nrgba.Rect.Dx() * 4
			copy(cloned.Pix[dstOffset:dstOffset+rowLen], nrgba.Pix[srcOffset:srcOffset+rowLen])
		}
		return cloned
	}

	// 16-bit sources are reduced to 8 bits per channel
	nrgba := image.NewNRGBA(img.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), img, nrgba.Bounds().Min, draw.Src)
	return nrgba
}
