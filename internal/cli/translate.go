package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/davechallis/erd-go/pkg/pipeline"
	"github.com/davechallis/erd-go/pkg/render/dot"
)

// Output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// translateOpts holds the command-line flags for the root command.
type translateOpts struct {
	input  string // input markup file, stdin if empty
	output string // output file, stdout if empty
	format string // dot, svg or png; inferred from output extension if empty
	config string // TOML override file path
}

// resolveFormat picks the output format: the explicit flag wins, otherwise
// the output file extension, otherwise DOT text.
func (o *translateOpts) resolveFormat() (string, error) {
	format := o.format
	if format == "" {
		switch strings.ToLower(filepath.Ext(o.output)) {
		case ".svg":
			format = formatSVG
		case ".png":
			format = formatPNG
		default:
			format = formatDOT
		}
	}
	switch format {
	case formatDOT, formatSVG, formatPNG:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %q (must be one of: dot, svg, png)", format)
	}
}

// runTranslate reads markup, runs the translation pipeline, and writes the
// result in the requested format.
func runTranslate(ctx context.Context, opts *translateOpts) error {
	logger := loggerFromContext(ctx)

	format, err := opts.resolveFormat()
	if err != nil {
		return err
	}

	src, err := readInput(opts.input)
	if err != nil {
		return err
	}

	overrides, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := pipeline.Translate(src, pipeline.Options{
		Overrides: overrides,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	out := []byte(result.DOT)
	switch format {
	case formatSVG:
		out, err = dot.RenderSVG(ctx, result.DOT)
	case formatPNG:
		out, err = dot.RenderPNG(ctx, result.DOT)
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Translated %d entities and %d relationships to %s",
		result.Stats.EntityCount, result.Stats.RelationCount, format))

	return writeOutput(out, opts.output, logger)
}

// readInput reads the markup source from path, or stdin when path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(data []byte, path string, logger *log.Logger) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("wrote output", "path", path, "bytes", len(data))
	return nil
}
