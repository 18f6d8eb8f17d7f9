package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAudioOutputPath    = "encoded_audio.mp3"
	DefaultDocumentOutputPath = "encoded_document.docx"
	DefaultPort               = "8080"
	DefaultLogLevel           = "info"
)

// File is the optional YAML configuration supplied through --config. Command line flags take precedence over any
// value set here
type File struct {
	LogLevel string `yaml:"log_level"`

	Image struct {
		Channel        string `yaml:"channel"`
		PngCompression string `yaml:"png_compression"`
		OutputFile     string `yaml:"output_file"`
	} `yaml:"image"`

	Audio struct {
		OutputFile string `yaml:"output_file"`
	} `yaml:"audio"`

	Document struct {
		OutputFile string `yaml:"output_file"`
	} `yaml:"document"`

	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

func DefaultFile() File {
	var f File
	f.LogLevel = DefaultLogLevel
	f.Image.Channel = ChannelRed.String()
	f.Image.PngCompression = "default"
	f.Image.OutputFile = DefaultOutputPath
	f.Audio.OutputFile = DefaultAudioOutputPath
	f.Document.OutputFile = DefaultDocumentOutputPath
	f.Server.Port = DefaultPort
	return f
}

// LoadFile reads the YAML file at path on top of the defaults. An empty path returns the defaults
func LoadFile(path string) (File, error) {
	f := DefaultFile()
	if path == "" {
		return f, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("reading config file: %w", err)
	}
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if _, err = ParseChannel(f.Image.Channel); err != nil {
		return f, err
	}
	return f, nil
}

// ImageEncodeConfig builds the encoder configuration described by the file
func (f File) ImageEncodeConfig() (ImageEncodeConfig, error) {
	channel, err := ParseChannel(f.Image.Channel)
	if err != nil {
		return ImageEncodeConfig{}, err
	}
	return ImageEncodeConfig{
		Channel:             channel,
		PngCompressionLevel: ParsePngCompression(f.Image.PngCompression),
		OutputPath:          f.Image.OutputFile,
	}.PopulateUnsetConfigVars(), nil
}
