package image

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"stegmsg/pkg/config"
	"stegmsg/test"
	"testing"
)

const (
	benchImageSize = 1000
)

func BenchmarkEncodeWithPNGOutput(b *testing.B) {
	compressionLevelNames := map[png.CompressionLevel]string{
		png.NoCompression:      "none",
		png.DefaultCompression: "default",
		png.BestSpeed:          "fast",
		png.BestCompression:    "best",
	}

	img := test.GenerateImage(benchImageSize, benchImageSize)
	message := test.GenerateRandomMessage(benchImageSize*benchImageSize/8 - 2)
	for compressionLevel, compressionName := range compressionLevelNames {
		b.Run(fmt.Sprintf("png.CompressionLevel=%s", compressionName), func(b *testing.B) {
			b.SetBytes(int64(len(message)))
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				encoder := NewImageEncoder(cloneImage(img), config.ImageEncodeConfig{PngCompressionLevel: compressionLevel})
				b.StartTimer()
				if err := encoder.EncodeMessage(message); err != nil {
					b.Fatalf("Error during image encoding: %s", err)
				}
				if err := encoder.WriteEncodedPNG(io.Discard); err != nil {
					b.Fatalf("Error writing PNG image: %s", err)
				}
			}
		})
	}
}

func BenchmarkEncodeDecode(b *testing.B) {
	img := test.GenerateImage(benchImageSize, benchImageSize)
	for _, messageLength := range []int{100, 10000, benchImageSize*benchImageSize/8 - 2} {
		message := test.GenerateRandomMessage(messageLength)
		b.Run(fmt.Sprintf("chars=%d", messageLength), func(b *testing.B) {
			b.SetBytes(int64(messageLength))
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				encodedImage := cloneImage(img)
				b.StartTimer()
				if err := NewImageEncoder(encodedImage, config.ImageEncodeConfig{}).EncodeMessage(message); err != nil {
					b.Fatalf("Error during image encoding: %s", err)
				}
				if _, err := NewImageDecoder(encodedImage, config.ImageDecodeConfig{}).DecodeMessage(); err != nil {
					b.Fatalf("Error during image decoding: %s", err)
				}
			}
		})
	}
}

func BenchmarkLoadImage(b *testing.B) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, test.GenerateImage(benchImageSize, benchImageSize)); err != nil {
		b.Fatalf("Error encoding benchmark image: %s", err)
	}
	b.SetBytes(int64(buf.Len()))
	for i := 0; i < b.N; i++ {
		if _, _, err := LoadImage(bytes.NewReader(buf.Bytes())); err != nil {
			b.Fatalf("Error loading image: %s", err)
		}
	}
}
