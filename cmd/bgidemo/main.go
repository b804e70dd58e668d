// Command bgidemo renders BGI-style pictures to PNG files.
//
//	bgidemo render scene.yaml -o out.png --scale 2
//	bgidemo demo -o demo.png
//	bgidemo font -o font.png
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/bgi"
	"github.com/gogpu/bgi/scene"
)

// stdoutName selects standard output as the PNG destination.
const stdoutName = "-"

var (
	errTerminal = errors.New("refusing to write PNG data to a terminal")
	errNoScene  = errors.New("missing scene file argument")
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %v", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "bgidemo",
		Usage:           l10n.T("Render BGI-style pictures to PNG"),
		Version:         bgi.Version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			renderCommand(),
			demoCommand(),
			fontCommand(),
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Required: true,
		Usage:    l10n.T("Output PNG file path (- for standard output)"),
	}
}

func scaleFlag(value int) cli.Flag {
	return &cli.IntFlag{
		Name:    "scale",
		Aliases: []string{"s"},
		Value:   value,
		Usage:   l10n.T("Integer upscale factor of the output image"),
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     l10n.T("Render a YAML scene to PNG"),
		ArgsUsage: "SCENE.yaml",
		Flags:     []cli.Flag{outputFlag(), scaleFlag(0)},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return errNoScene
			}
			sc, err := scene.Load(path)
			if err != nil {
				return err
			}
			scale := c.Int("scale")
			if scale < 1 {
				scale = sc.Scale
			}
			bgi.Logger().Info("render", "scene", path, "width", sc.Width, "height", sc.Height, "ops", len(sc.Ops))
			return writePNG(c, sc.Render(), scale)
		},
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: l10n.T("Render the built-in demo picture"),
		Flags: []cli.Flag{outputFlag(), scaleFlag(1)},
		Action: func(c *cli.Context) error {
			return writePNG(c, renderDemo(), c.Int("scale"))
		},
	}
}

func fontCommand() *cli.Command {
	return &cli.Command{
		Name:  "font",
		Usage: l10n.T("Render the 16x16 code page 437 glyph sheet"),
		Flags: []cli.Flag{outputFlag(), scaleFlag(2)},
		Action: func(c *cli.Context) error {
			return writePNG(c, renderFontSheet(), c.Int("scale"))
		},
	}
}

func setupLogging(c *cli.Context) error {
	if c.Bool("quiet") {
		bgi.SetLogger(nil)
		return nil
	}
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return errors.New(l10n.F("unknown log level %q", c.String("log-level")))
	}
	bgi.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})))
	return nil
}

// writePNG encodes s to the --output destination.
func writePNG(c *cli.Context, s *bgi.Surface, scale int) error {
	out := c.String("output")
	if out == stdoutName {
		w := c.App.Writer
		if isTerminal(w) {
			return errTerminal
		}
		return s.EncodePNG(w, scale)
	}

	f, err := os.Create(out) //nolint:gosec // output path is user-provided
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f, scale); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(c.App.ErrWriter, l10n.F("Wrote %s (%dx%d)", out, s.Width()*max(scale, 1), s.Height()*max(scale, 1)))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
