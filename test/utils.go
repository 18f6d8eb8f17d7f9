package test

import (
	"image"
	"image/color"
	"math/rand"
	"strings"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateRandomMessage returns a message made of runes in the single byte range U+0001..U+00FF. Bytes 0xFF are
// avoided so that no accidental terminator can appear inside the message
func GenerateRandomMessage(numOfChars int) string {
	var sb strings.Builder
	for i := 0; i < numOfChars; i++ {
		sb.WriteRune(rune(rand.Intn(0xFE) + 1))
	}
	return sb.String()
}

// GenerateImage builds an opaque image with random channel values
func GenerateImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: 255})
		}
	}
	return img
}

// GenerateEvenImage builds an image where every channel value is even, so no LSB is set
func GenerateEvenImage(width, height int) *image.NRGBA {
	img := GenerateImage(width, height)
	for i := range img.Pix {
		img.Pix[i] &= 0xFE
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
