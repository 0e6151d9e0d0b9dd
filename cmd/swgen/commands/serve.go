package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-swgen/pkg/output"
	"github.com/goliatone/go-swgen/pkg/preview"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live-generated sw.js (and the source directory) for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := root.newGenerator()
			if err != nil {
				return err
			}
			req, err := opts.request(false)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/"+output.Filename, preview.NewHandler(gen, req, log.Logger))
			if info, err := os.Stat(opts.source); err == nil && info.IsDir() {
				mux.Handle("/", http.FileServer(http.Dir(opts.source)))
			}

			return serve(cmd.Context(), addr, mux)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Serving preview")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
