package config

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileDefaults(t *testing.T) {
	f, err := LoadFile("")
	if err != nil {
		t.Fatalf("Error loading default config: %s", err)
	}
	if f.Server.Port != DefaultPort {
		t.Errorf("Expected default port %s, got %s", DefaultPort, f.Server.Port)
	}

	encodeConfig, err := f.ImageEncodeConfig()
	if err != nil {
		t.Fatalf("Error building encode config: %s", err)
	}
	if encodeConfig.Channel != ChannelRed || encodeConfig.OutputPath != DefaultOutputPath ||
		encodeConfig.PngCompressionLevel != png.DefaultCompression {
		t.Errorf("Unexpected default encode config %+v", encodeConfig)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stegmsg.yaml")
	content := `
log_level: debug
image:
  channel: blue
  png_compression: best
  output_file: out.png
server:
  port: "9999"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Error writing config file: %s", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Error loading config: %s", err)
	}
	if f.LogLevel != "debug" || f.Server.Port != "9999" {
		t.Errorf("Unexpected config values %+v", f)
	}
	if f.Audio.OutputFile != DefaultAudioOutputPath {
		t.Errorf("Unset values should keep their defaults, got %q", f.Audio.OutputFile)
	}

	encodeConfig, err := f.ImageEncodeConfig()
	if err != nil {
		t.Fatalf("Error building encode config: %s", err)
	}
	if encodeConfig.Channel != ChannelBlue || encodeConfig.OutputPath != "out.png" ||
		encodeConfig.PngCompressionLevel != png.BestCompression {
		t.Errorf("Unexpected encode config %+v", encodeConfig)
	}
}

func TestLoadFileInvalidChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stegmsg.yaml")
	if err := os.WriteFile(path, []byte("image:\n  channel: alpha\n"), 0600); err != nil {
		t.Fatalf("Error writing config file: %s", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Errorf("Expected error for unknown channel")
	}
}

func TestParseChannel(t *testing.T) {
	for name, expected := range map[string]Channel{"": ChannelRed, "red": ChannelRed, "Green": ChannelGreen, "BLUE": ChannelBlue} {
		c, err := ParseChannel(name)
		if err != nil {
			t.Errorf("Unexpected error parsing %q: %s", name, err)
		}
		if c != expected {
			t.Errorf("ParseChannel(%q) = %s, expected %s", name, c, expected)
		}
	}
}

func TestPopulateUnsetConfigVars(t *testing.T) {
	c := ImageEncodeConfig{Channel: Channel(7)}.PopulateUnsetConfigVars()
	if c.Channel != ChannelRed {
		t.Errorf("Out of range channel should fall back to red, got %s", c.Channel)
	}
	if c.OutputPath != DefaultOutputPath {
		t.Errorf("Expected default output path, got %q", c.OutputPath)
	}
}

func TestDecodeConfigFollowsEncodeChannel(t *testing.T) {
	f := DefaultFile()
	f.Image.Channel = "green"
	encodeConfig, err := f.ImageEncodeConfig()
	if err != nil {
		t.Fatalf("Error building encode config: %s", err)
	}
	if decodeConfig := encodeConfig.DecodeConfig(); decodeConfig.Channel != ChannelGreen {
		t.Errorf("Expected decode channel %s, got %s", ChannelGreen, decodeConfig.Channel)
	}
}
