package main

import (
	"github.com/spf13/cobra"
	"github.com/xhad/wikidef/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve definitions over HTTP",
	Long: `Starts the HTTP endpoint. GET /?word=<word> returns
{"word": ..., "definitions": [...]} with permissive CORS headers.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Each request triggers exactly one fetch; the server does not throttle them.
	a, err := newApp(0)
	if err != nil {
		return err
	}

	addr := a.config.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(server.Config{
		Addr:            addr,
		ReadTimeout:     a.config.Server.ReadTimeout,
		WriteTimeout:    a.config.Server.WriteTimeout,
		ShutdownTimeout: a.config.Server.ShutdownTimeout,
	}, a.lookup, a.log)

	return srv.Run(cmd.Context())
}
