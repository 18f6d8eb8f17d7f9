package image

import (
	"image"
	"image/png"
	"io"
	"stegmsg/internal/bits"
	"stegmsg/pkg/config"
	"stegmsg/pkg/model"
	"time"
)

type Encoder struct {
	image  *image.NRGBA
	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

// NewImageEncoder returns an encoder that modifies img in place
func NewImageEncoder(img *image.NRGBA, iConfig config.ImageEncodeConfig) *Encoder {
	return &Encoder{
		image:  img,
		config: iConfig.PopulateUnsetConfigVars(),
	}
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// EncodeMessage frames the message and embeds it into the image. If the message does not fit, or cannot be
// represented with single byte characters, the image is left untouched
func (e *Encoder) EncodeMessage(message string) error {
	e.stats = model.EncodeStats{}

	payload, err := e.setupPayload(message)
	if err != nil {
		return err
	}

	e.encodePayloadToRawImage(payload)
	return nil
}

func (e *Encoder) WriteEncodedPNG(output io.Writer) error {
	return e.encodeRawImage(output)
}

func (e *Encoder) setupPayload(message string) (*Payload, error) {
	setupStart := time.Now()
	defer func() {
		e.stats.Setup = time.Since(setupStart)
	}()

	bounds := e.image.Bounds()
	e.stats.Capacity = Capacity(bounds.Dx(), bounds.Dy())
	return Frame(message, bounds.Dx(), bounds.Dy())
}

func (e *Encoder) encodePayloadToRawImage(payload *Payload) {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	br := bits.NewBitReader(payload.Bytes())
	channelOffset := int(e.config.Channel)
	bounds := e.image.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && br.BitsLeftToRead() > 0; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && br.BitsLeftToRead() > 0; x++ {
			subPixel := e.image.PixOffset(x, y) + channelOffset
			// Clear the least significant bit and set it to the next payload bit
			e.image.Pix[subPixel] = e.image.Pix[subPixel]&0xFE | br.ReadBit()
			e.stats.BitsEmbedded++
		}
	}
}

func (e *Encoder) encodeRawImage(outputWriter io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	enc := png.Encoder{CompressionLevel: e.config.PngCompressionLevel}
	return enc.Encode(outputWriter, e.image)
}
