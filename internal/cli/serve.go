package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/davechallis/erd-go/pkg/pipeline"
	"github.com/davechallis/erd-go/pkg/render/dot"
)

// newServeCmd creates the serve command: a local preview server that
// re-translates the markup file on every request, so edits show up on
// browser refresh.
func newServeCmd(opts *translateOpts) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <file.er>",
		Short: "Serve a live preview of a markup file",
		Long: `Serve starts a local HTTP server that renders the given markup file as
an SVG diagram. The file is re-read and re-translated on every request,
so refreshing the browser shows the latest saved version. Translation
errors are shown in the page instead of aborting the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr, args[0], opts.config)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	return cmd
}

func runServe(cmd *cobra.Command, addr, path, configPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	// Fail early on an unreadable file; later read errors are shown in-page.
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, previewPage, path)
	})

	r.Get("/diagram.svg", func(w http.ResponseWriter, req *http.Request) {
		svg, err := renderFile(req.Context(), path, configPath)
		if err != nil {
			logger.Error("render failed", "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(svg)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	logger.Info("preview server listening", "addr", "http://"+addr, "file", path)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// renderFile translates the markup file and lays it out as SVG.
func renderFile(ctx context.Context, path, configPath string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	overrides, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	result, err := pipeline.Translate(src, pipeline.Options{Overrides: overrides})
	if err != nil {
		return nil, err
	}

	return dot.RenderSVG(ctx, result.DOT)
}

const previewPage = `<!DOCTYPE html>
<html>
<head><title>erd preview: %s</title></head>
<body style="margin:0; display:flex; justify-content:center">
  <img src="/diagram.svg" alt="diagram" style="max-width:100%%">
</body>
</html>
`
