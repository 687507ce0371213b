package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intelligrit/adventure-guide/internal/store"
	"github.com/intelligrit/adventure-guide/internal/web"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stored destinations as a read-only JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if s.DestinationCount() == 0 {
			fmt.Println("Warning: no destinations stored yet, API will return empty results.")
		}

		server := &web.Server{
			Store: s,
			Addr:  fmt.Sprintf("%s:%d", serveHost, servePort),
		}
		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind the server to")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to bind the server to")
	rootCmd.AddCommand(serveCmd)
}
