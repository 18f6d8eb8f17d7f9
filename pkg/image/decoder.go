package image

import (
	"errors"
	"image"
	"stegmsg/internal/bits"
	"stegmsg/pkg/config"
	"stegmsg/pkg/model"
	"time"
)

var (
	ErrTerminatorNotFound = errors.New("no message found, the image was likely not encoded using stegmsg")
)

type Decoder struct {
	image  *image.NRGBA
	config config.ImageDecodeConfig
	stats  model.DecodeStats
}

func NewImageDecoder(img *image.NRGBA, dConfig config.ImageDecodeConfig) *Decoder {
	return &Decoder{
		image:  img,
		config: dConfig.PopulateUnsetConfigVars(),
	}
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// DecodeMessage scans pixels in raster order, stopping as soon as the last 16 bits read match the terminator. Bits
// before the terminator are regrouped into bytes, and any trailing partial byte is discarded
func (d *Decoder) DecodeMessage() (string, error) {
	d.stats = model.DecodeStats{}
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	messageBytes, found := d.readUntilTerminator()
	if !found {
		return "", ErrTerminatorNotFound
	}
	return bytesToMessage(messageBytes)
}

func (d *Decoder) readUntilTerminator() ([]byte, bool) {
	bounds := d.image.Bounds()
	bw := bits.NewBitWriter(Capacity(bounds.Dx(), bounds.Dy()) / 8)
	channelOffset := int(d.config.Channel)

	var window uint16
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			bit := d.image.Pix[d.image.PixOffset(x, y)+channelOffset] & 1
			bw.WriteBit(bit)
			window = window<<1 | uint16(bit)
			d.stats.BitsScanned++

			if bw.Len() >= terminatorBits && window == Terminator {
				return bw.CompleteBytes(bw.Len() - terminatorBits), true
			}
		}
	}
	return nil, false
}
