package image

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"stegmsg/pkg/config"
)

var (
	ErrWriteFailure   = errors.New("encoded image could not be written")
	ErrOutputIsSource = errors.New("output path must differ from the source image")
)

// EncodeFile hides message in the image at imagePath and writes the result as PNG to the configured output path,
// which is returned. Nothing is written when the message does not fit, and the output only appears once it has been
// fully written
func EncodeFile(imagePath, message string, iConfig config.ImageEncodeConfig) (string, *Encoder, error) {
	iConfig = iConfig.PopulateUnsetConfigVars()
	outputPath := iConfig.OutputPath

	same, err := samePath(imagePath, outputPath)
	if err != nil {
		return "", nil, err
	} else if same {
		return "", nil, ErrOutputIsSource
	}

	srcImage, err := GetImageFromFilePath(imagePath)
	if err != nil {
		return "", nil, err
	}

	encoder := NewImageEncoder(srcImage, iConfig)
	if err = encoder.EncodeMessage(message); err != nil {
		return "", encoder, err
	}

	if err = writeFileAtomically(outputPath, encoder); err != nil {
		return "", encoder, err
	}
	return outputPath, encoder, nil
}

// DecodeFile recovers the message hidden in the image at imagePath
func DecodeFile(imagePath string, dConfig config.ImageDecodeConfig) (string, *Decoder, error) {
	srcImage, err := GetImageFromFilePath(imagePath)
	if err != nil {
		return "", nil, err
	}

	decoder := NewImageDecoder(srcImage, dConfig)
	message, err := decoder.DecodeMessage()
	return message, decoder, err
}

func GetImageFromFilePath(filePath string) (*image.NRGBA, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadableSource, err)
	}
	defer f.Close()

	img, _, err := LoadImage(f)
	return img, err
}

func writeFileAtomically(outputPath string, encoder *Encoder) (retErr error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	defer func() {
		if retErr != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err = encoder.WriteEncodedPNG(tmpFile); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	if err = os.Chmod(tmpFile.Name(), 0644); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	if err = os.Rename(tmpFile.Name(), outputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	statA, errA := os.Stat(absA)
	statB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(statA, statB), nil
}
