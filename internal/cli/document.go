package cli

import (
	"fmt"
	"stegmsg/pkg/config"
	"stegmsg/pkg/document"

	"github.com/spf13/cobra"
)

func DocumentCommands(global *globalOpts) *cobra.Command {
	documentCmd := &cobra.Command{
		Use:     "document",
		Short:   "Hides or recovers messages as the last paragraph of a Word document",
		Example: "stegmsg document encode --document report.docx --message \"meet at noon\"",
	}

	documentCmd.AddCommand(encodeDocumentCommand(global), decodeDocumentCommand())
	return documentCmd
}

func encodeDocumentCommand(global *globalOpts) *cobra.Command {
	var sourceDocument, outputDocument, message string

	encodeCmd := &cobra.Command{
		Use:     "encode",
		Example: "stegmsg document encode --document report.docx --message \"meet at noon\" --output-file encoded_document.docx",
		Short:   "Append a message as the last paragraph of a copy of a .docx document",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := stringFlagOrDefault(cmd, "output-file", outputDocument, global.file.Document.OutputFile)
			writtenPath, err := document.AppendParagraph(sourceDocument, outputPath, message)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with the message as its last paragraph\n", writtenPath)
			return nil
		},
	}

	encodeCmd.Flags().StringVar(&sourceDocument, "document", "", "Document to hide the message in (it will not be modified)")
	encodeCmd.Flags().StringVar(&message, "message", "", "Message to hide")
	encodeCmd.Flags().StringVar(&outputDocument, "output-file", config.DefaultDocumentOutputPath, "Name for the document that will be generated")
	MarkFlagsRequired(encodeCmd, "document", "message")
	return encodeCmd
}

func decodeDocumentCommand() *cobra.Command {
	var encodedDocument string

	decodeCmd := &cobra.Command{
		Use:     "decode",
		Example: "stegmsg document decode --source encoded_document.docx",
		Short:   "Read the last paragraph of a .docx document",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := document.LastParagraph(encodedDocument)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	decodeCmd.Flags().StringVar(&encodedDocument, "source", "", "Document to read the message from")
	MarkFlagsRequired(decodeCmd, "source")
	return decodeCmd
}
