package cli

import (
	"fmt"
	"stegmsg/pkg/audio"
	"stegmsg/pkg/config"

	"github.com/spf13/cobra"
)

func AudioCommands(global *globalOpts) *cobra.Command {
	audioCmd := &cobra.Command{
		Use:     "audio",
		Short:   "Hides or recovers messages in the title tag of an MP3 file",
		Example: "stegmsg audio encode --audio song.mp3 --message \"meet at noon\"",
	}

	audioCmd.AddCommand(encodeAudioCommand(global), decodeAudioCommand())
	return audioCmd
}

func encodeAudioCommand(global *globalOpts) *cobra.Command {
	var sourceAudio, outputAudio, message string

	encodeCmd := &cobra.Command{
		Use:     "encode",
		Example: "stegmsg audio encode --audio song.mp3 --message \"meet at noon\" --output-file encoded_audio.mp3",
		Short:   "Store a message as the ID3 title of a copy of an MP3 file",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := stringFlagOrDefault(cmd, "output-file", outputAudio, global.file.Audio.OutputFile)
			writtenPath, err := audio.EncodeTitle(sourceAudio, outputPath, message)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with the message stored in its title tag\n", writtenPath)
			return nil
		},
	}

	encodeCmd.Flags().StringVar(&sourceAudio, "audio", "", "MP3 file to hide the message in (it will not be modified)")
	encodeCmd.Flags().StringVar(&message, "message", "", "Message to hide")
	encodeCmd.Flags().StringVar(&outputAudio, "output-file", config.DefaultAudioOutputPath, "Name for the MP3 file that will be generated")
	MarkFlagsRequired(encodeCmd, "audio", "message")
	return encodeCmd
}

func decodeAudioCommand() *cobra.Command {
	var encodedAudio string

	decodeCmd := &cobra.Command{
		Use:     "decode",
		Example: "stegmsg audio decode --source encoded_audio.mp3",
		Short:   "Read a message stored in the ID3 title of an MP3 file",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := audio.DecodeTitle(encodedAudio)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	decodeCmd.Flags().StringVar(&encodedAudio, "source", "", "MP3 file to read the message from")
	MarkFlagsRequired(decodeCmd, "source")
	return decodeCmd
}
