package cmd

import (
	"github.com/spf13/cobra"

	"github.com/revsim/debt-projector/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and simulation API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagAddr, "addr", "a", "localhost:8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ws := server.NewWebServer(newEngine(), flagAddr)
	return ws.Start()
}
