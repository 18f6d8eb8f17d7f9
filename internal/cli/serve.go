package cli

import (
	"stegmsg/internal/server"

	"github.com/spf13/cobra"
)

func ServeAppCommand(global *globalOpts) *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "stegmsg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(stringFlagOrDefault(cmd, "port", port, global.file.Server.Port))
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server")

	return command
}
