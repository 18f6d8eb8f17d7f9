package cli

import (
	"fmt"
	"os"
	"stegmsg/internal/logging"
	"stegmsg/pkg/config"
	stegImage "stegmsg/pkg/image"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func ImageCommands(global *globalOpts) *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Hides or recovers messages in the least significant bits of an image",
		Example: "stegmsg image encode --image source.png --message \"meet at noon\" --output-file encoded_image.png",
	}

	imageCmd.AddCommand(encodeImageCommand(global), decodeMessageFromImage(global))
	return imageCmd
}

type commonOpts struct {
	channel        string
	pngCompression string
}

type encodeImageOpts struct {
	sourceImage string
	outputImage string
	message     string
	config      commonOpts
}

// toEncodeConfig starts from the config file settings and overrides them with the flags set on the command line
func (o encodeImageOpts) toEncodeConfig(cmd *cobra.Command, file config.File) (config.ImageEncodeConfig, error) {
	file.Image.Channel = stringFlagOrDefault(cmd, "channel", o.config.channel, file.Image.Channel)
	file.Image.PngCompression = stringFlagOrDefault(cmd, "png-compression", o.config.pngCompression, file.Image.PngCompression)
	file.Image.OutputFile = stringFlagOrDefault(cmd, "output-file", o.outputImage, file.Image.OutputFile)
	return file.ImageEncodeConfig()
}

func encodeImageCommand(global *globalOpts) *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "stegmsg image encode --image source.png --message \"meet at noon\" --output-file encoded_image.png",
		Short:   "Hide a message in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			encodeConfig, err := opts.toEncodeConfig(cmd, global.file)
			if err != nil {
				return err
			}
			return EncodeMessageIntoImage(cmd, opts.sourceImage, opts.message, encodeConfig)
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the message in (it will not be modified)")
	encImgCmd.Flags().StringVar(&opts.message, "message", "", "Message to hide. Only characters in the range U+0000 to U+00FF are supported")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", config.DefaultOutputPath, "Name for the encoded PNG image that will be generated")
	encImgCmd.Flags().StringVar(&opts.config.channel, "channel", "red", "Channel whose least significant bit carries the message. Options are red, green, blue")
	encImgCmd.Flags().StringVar(&opts.config.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")

	MarkFlagsRequired(encImgCmd, "image", "message")

	return encImgCmd
}

func EncodeMessageIntoImage(cmd *cobra.Command, imageSourcePath, message string, encodeConfig config.ImageEncodeConfig) error {
	s := NewSpinner(cmd.ErrOrStderr())
	s.Prefix = "Encoding message "
	s.Start()

	outputPath, encoder, err := stegImage.EncodeFile(imageSourcePath, message, encodeConfig)
	s.Stop()
	if err != nil {
		return err
	}

	var outputSize string
	if stat, err := os.Stat(outputPath); err == nil {
		outputSize = humanize.Bytes(uint64(stat.Size()))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%s) with a %d character message hidden in the %s channel\n",
		outputPath, outputSize, len([]rune(message)), encodeConfig.Channel)

	stats := encoder.Stats()
	logging.BuildLogger().Debug("Image encoding stats",
		"setup", stats.Setup.String(),
		"data_encoding", stats.DataEncoding.String(),
		"output_image_encoding", stats.OutputImageEncoding.String(),
		"bits_embedded", stats.BitsEmbedded,
		"capacity", stats.Capacity,
	)
	return nil
}

func decodeMessageFromImage(global *globalOpts) *cobra.Command {
	var encodedImageFile, channelName string

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "stegmsg image decode --source encoded_image.png",
		Short:   "Recover a message hidden in an image by stegmsg",
		RunE: func(cmd *cobra.Command, args []string) error {
			file := global.file
			file.Image.Channel = stringFlagOrDefault(cmd, "channel", channelName, file.Image.Channel)
			imageConfig, err := file.ImageEncodeConfig()
			if err != nil {
				return err
			}
			return DecodeMessageFromImage(cmd, encodedImageFile, imageConfig.DecodeConfig())
		},
	}

	decodeCommand.Flags().StringVar(&encodedImageFile, "source", "", "Image generated by stegmsg to decode")
	decodeCommand.Flags().StringVar(&channelName, "channel", "red", "Channel the message was hidden in. Options are red, green, blue")
	MarkFlagsRequired(decodeCommand, "source")
	return decodeCommand
}

func DecodeMessageFromImage(cmd *cobra.Command, encodedImagePath string, decodeConfig config.ImageDecodeConfig) error {
	message, decoder, err := stegImage.DecodeFile(encodedImagePath, decodeConfig)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)

	stats := decoder.Stats()
	logging.BuildLogger().Debug("Image decoding stats",
		"data_decoding", stats.DataDecoding.String(),
		"bits_scanned", stats.BitsScanned,
	)
	return nil
}
