package cli

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"stegmsg/internal/logging"
	stegImage "stegmsg/pkg/image"
	"stegmsg/test"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := RootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func writeTestPNG(t *testing.T, dir string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, "source.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, test.GenerateImage(width, height)))
	return path
}

func TestImageEncodeDecode(t *testing.T) {
	channels := []string{"red", "green", "blue"}

	for _, channel := range channels {
		channel := channel
		t.Run(channel, func(t *testing.T) {
			dir := t.TempDir()
			source := writeTestPNG(t, dir, 40, 40)
			output := filepath.Join(dir, "out.png")

			stdout, err := runCommand(t, "image", "encode", "--image", source, "--message", "hello there",
				"--output-file", output, "--channel", channel, "--png-compression", "best")
			require.NoError(t, err)
			require.Contains(t, stdout, output)
			require.FileExists(t, output)

			stdout, err = runCommand(t, "image", "decode", "--source", output, "--channel", channel)
			require.NoError(t, err)
			require.Equal(t, "hello there\n", stdout)
		})
	}
}

func TestImageEncodeUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 20, 20)
	output := filepath.Join(dir, "from_config.png")
	configPath := filepath.Join(dir, "stegmsg.yaml")
	configYAML := "log_level: debug\nimage:\n  channel: blue\n  output_file: " + output + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0600))

	_, err := runCommand(t, "--config", configPath, "image", "encode", "--image", source, "--message", "cfg")
	require.NoError(t, err)
	require.FileExists(t, output)

	stdout, err := runCommand(t, "--config", configPath, "image", "decode", "--source", output)
	require.NoError(t, err)
	require.Equal(t, "cfg\n", stdout)

	stdout, err = runCommand(t, "--config", configPath, "image", "decode", "--source", output, "--channel", "blue")
	require.NoError(t, err)
	require.Equal(t, "cfg\n", stdout)
}

func TestImageDecodeChannelFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 20, 20)
	output := filepath.Join(dir, "green.png")
	configPath := filepath.Join(dir, "stegmsg.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("image:\n  channel: green\n"), 0600))

	_, err := runCommand(t, "image", "encode", "--image", source, "--message", "green", "--output-file", output,
		"--channel", "green")
	require.NoError(t, err)

	stdout, err := runCommand(t, "--config", configPath, "image", "decode", "--source", output)
	require.NoError(t, err)
	require.Equal(t, "green\n", stdout)
}

func TestImageEncodeCapacityExceeded(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 4, 4)
	output := filepath.Join(dir, "out.png")

	_, err := runCommand(t, "image", "encode", "--image", source, "--message", "x", "--output-file", output)
	require.ErrorIs(t, err, stegImage.ErrCapacityExceeded)
	require.NoFileExists(t, output)
}

func TestImageEncodeInvalidChannel(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 8, 8)

	_, err := runCommand(t, "image", "encode", "--image", source, "--message", "x", "--channel", "alpha")
	require.Error(t, err)
}

func TestImageEncodeMissingRequiredFlags(t *testing.T) {
	_, err := runCommand(t, "image", "encode", "--message", "x")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "image"))
}

func TestAudioEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(source, bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 256), 0600))
	output := filepath.Join(dir, "encoded.mp3")

	_, err := runCommand(t, "audio", "encode", "--audio", source, "--message", "title message", "--output-file", output)
	require.NoError(t, err)

	stdout, err := runCommand(t, "audio", "decode", "--source", output)
	require.NoError(t, err)
	require.Equal(t, "title message\n", stdout)

	_, err = runCommand(t, "audio", "decode", "--source", source)
	require.Error(t, err)
}

func TestDocumentDecodeInvalid(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "not.docx")
	require.NoError(t, os.WriteFile(source, []byte("plain text"), 0600))

	_, err := runCommand(t, "document", "decode", "--source", source)
	require.Error(t, err)
}

func TestCPUProfileWritten(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 20, 20)
	output := filepath.Join(dir, "out.png")
	cpuProfile := filepath.Join(dir, "cpu.prof")

	_, err := runCommand(t, "--cpu-profile", cpuProfile, "image", "encode", "--image", source, "--message", "prof",
		"--output-file", output)
	require.NoError(t, err)
	require.FileExists(t, cpuProfile)
}
