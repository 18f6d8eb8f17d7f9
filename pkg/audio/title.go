// Package audio hides a message in the title frame (TIT2) of an MP3 file's ID3v2 tag
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"stegmsg/pkg/config"

	id3 "github.com/bogem/id3v2/v2"
)

var (
	ErrMessageNotFound = errors.New("no message found in the audio title tag")
	ErrOutputIsSource  = errors.New("output path must differ from the source audio file")
)

// EncodeTitle copies the audio file at srcPath to outputPath and stores message as its title. An empty outputPath
// uses config.DefaultAudioOutputPath. The source file is never modified
func EncodeTitle(srcPath, outputPath, message string) (string, error) {
	if outputPath == "" {
		outputPath = config.DefaultAudioOutputPath
	}
	if absSrc, absOut := absPath(srcPath), absPath(outputPath); absSrc == absOut {
		return "", ErrOutputIsSource
	}

	if err := copyFile(srcPath, outputPath); err != nil {
		return "", err
	}

	tag, err := id3.Open(outputPath, id3.Options{Parse: true})
	if err != nil {
		_ = os.Remove(outputPath)
		return "", fmt.Errorf("reading ID3 tag: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3.EncodingUTF8)
	tag.SetTitle(message)
	if err = tag.Save(); err != nil {
		_ = os.Remove(outputPath)
		return "", fmt.Errorf("writing ID3 tag: %w", err)
	}
	return outputPath, nil
}

// DecodeTitle returns the title stored in the ID3v2 tag of the audio file at path
func DecodeTitle(path string) (string, error) {
	tag, err := id3.Open(path, id3.Options{Parse: true, ParseFrames: []string{"Title"}})
	if err != nil {
		return "", fmt.Errorf("reading ID3 tag: %w", err)
	}
	defer tag.Close()

	title := tag.Title()
	if title == "" {
		return "", ErrMessageNotFound
	}
	return title, nil
}

func copyFile(srcPath, dstPath string) (retErr error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := dst.Close(); retErr == nil {
			retErr = closeErr
		}
		if retErr != nil {
			_ = os.Remove(dstPath)
		}
	}()

	_, err = io.Copy(dst, src)
	return err
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
