package config

import (
	"fmt"
	"image/png"
	"strings"
)

const (
	DefaultOutputPath = "encoded_image.png"
)

// Channel is the pixel channel whose least significant bit carries the message
type Channel byte

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

var (
	channelNames = map[string]Channel{
		"red":   ChannelRed,
		"green": ChannelGreen,
		"blue":  ChannelBlue,
	}

	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

func ParseChannel(name string) (Channel, error) {
	if name == "" {
		return ChannelRed, nil
	}
	c, found := channelNames[strings.ToLower(name)]
	if !found {
		return 0, fmt.Errorf("unknown channel %q, options are red, green, blue", name)
	}
	return c, nil
}

func (c Channel) String() string {
	for name, channel := range channelNames {
		if channel == c {
			return name
		}
	}
	return fmt.Sprintf("channel(%d)", byte(c))
}

// ParsePngCompression maps a compression name to its png level, unknown names fall back to the default level
func ParsePngCompression(name string) png.CompressionLevel {
	mappedCompression, found := pngCompressionMapping[strings.ToLower(name)]
	if !found {
		return png.DefaultCompression
	}
	return mappedCompression
}

type ImageEncodeConfig struct {
	Channel             Channel
	PngCompressionLevel png.CompressionLevel
	OutputPath          string
}

func (c ImageEncodeConfig) PopulateUnsetConfigVars() ImageEncodeConfig {
	if c.Channel > ChannelBlue {
		c.Channel = ChannelRed
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	return c
}

func (c ImageEncodeConfig) DecodeConfig() ImageDecodeConfig {
	return ImageDecodeConfig{Channel: c.Channel}
}

type ImageDecodeConfig struct {
	Channel Channel
}

func (c ImageDecodeConfig) PopulateUnsetConfigVars() ImageDecodeConfig {
	if c.Channel > ChannelBlue {
		c.Channel = ChannelRed
	}
	return c
}
