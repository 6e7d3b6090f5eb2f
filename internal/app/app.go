package app

import (
	"fmt"
	"io"
	"os"

	"github.com/kobzarvs/mrcat/internal/config"
	"github.com/kobzarvs/mrcat/internal/document"
	"github.com/kobzarvs/mrcat/internal/editor"
	"github.com/kobzarvs/mrcat/internal/logger"
	"github.com/kobzarvs/mrcat/internal/terminal"
)

// App is the top-level runtime for mrcat.
type App struct {
	args []string
	out  io.Writer
}

func New(args []string) *App {
	return &App{args: args, out: os.Stdout}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.File, cfg.Log.Debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	var path string
	if len(a.args) > 0 {
		path = a.args[0]
	}
	doc := document.Open(path, cfg.Editor.TabWidth)

	surface, err := terminal.New(terminal.Size{
		Width:  cfg.Editor.FallbackWidth,
		Height: cfg.Editor.FallbackHeight,
	})
	if err != nil {
		logger.Error("terminal init", "err", err)
		return err
	}
	logger.Info("editor started", "path", path, "version", editor.Version)
	return a.runEditor(cfg, surface, doc)
}

// runEditor owns the surface until the loop ends. Closing it leaves the
// alternate screen, which wipes the in-editor farewell frame, so on a clean
// quit the farewell is repeated on the restored screen.
func (a *App) runEditor(cfg config.Config, surface *terminal.Surface, buf editor.Buffer) error {
	err := func() error {
		// Restores the terminal on every return path, panics included.
		defer surface.Close()
		return editor.New(cfg, surface, buf).Run()
	}()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(a.out, editor.Farewell)
	return nil
}
