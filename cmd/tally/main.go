// Command tally renders election result graphics: choropleth maps, the
// legend panel and their combination.
//
// Usage:
//
//	tally -c session.yaml run
//	tally -c session.yaml legend -backend svg -o legend.svg
//	tally viewbox map.svg "350 245 300 30"
//	tally convert map.svg map.png
//	tally combine -o out.png map.png legend.png
package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/config"
	"github.com/gogpu/tally/imaging"
	"github.com/gogpu/tally/internal/session"
	"github.com/gogpu/tally/recording"
)

type app struct {
	cfg *config.Config
}

func main() {
	a := &app{}
	cmd := &cli.Command{
		Name:  "tally",
		Usage: "draws election result maps and legends",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "session YAML file (defaults are used when empty)",
				Sources: cli.EnvVars("TALLY_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "dotenv file with TALLY_* overrides",
				Value: ".env",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "renders the map, the legend and the combined image",
				Action: a.run,
			},
			{
				Name:  "map",
				Usage: "renders the choropleth map (SVG and PNG)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "colorscale",
						Usage: "also write the map colorscale to this YAML file",
					},
				},
				Action: a.renderMap,
			},
			{
				Name:  "legend",
				Usage: "renders the legend panel",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "backend",
						Usage: fmt.Sprintf("output backend %v (default: chosen by output extension)", recording.Backends()),
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file (defaults to the configured legend output)",
					},
				},
				Action: a.legend,
			},
			{
				Name:      "viewbox",
				Usage:     "rewrites the viewBox of an SVG file",
				ArgsUsage: "<file.svg> <\"x y width height\">",
				Action:    viewBox,
			},
			{
				Name:      "convert",
				Usage:     "converts an SVG file to PNG",
				ArgsUsage: "<src.svg> <dst.png>",
				Action:    convert,
			},
			{
				Name:      "combine",
				Usage:     "pastes PNG files side by side",
				ArgsUsage: "<a.png> <b.png>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "output PNG file",
						Required: true,
					},
				},
				Action: combine,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		tally.Logger().Error("tally failed", "err", err)
		fmt.Fprintln(os.Stderr, "tally:", err)
		os.Exit(1)
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := config.LoadEnv(cmd.String("env")); err != nil {
		return ctx, err
	}
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	level, err := cfg.Level()
	if err != nil {
		return ctx, err
	}
	tally.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	a.cfg = cfg
	return ctx, nil
}

func (a *app) session() (*session.Session, error) {
	return session.New(a.cfg)
}

func (a *app) run(_ context.Context, _ *cli.Command) error {
	s, err := a.session()
	if err != nil {
		return err
	}
	return s.Run()
}

func (a *app) renderMap(_ context.Context, cmd *cli.Command) error {
	if path := cmd.String("colorscale"); path != "" {
		a.cfg.Map.Colorscale = path
	}
	s, err := a.session()
	if err != nil {
		return err
	}
	_, err = s.RenderMap()
	return err
}

func (a *app) legend(_ context.Context, cmd *cli.Command) error {
	s, err := a.session()
	if err != nil {
		return err
	}
	dst := cmd.String("output")
	if dst == "" {
		dst = a.cfg.Output(a.cfg.Legend.Output)
	}
	if err := s.WriteLegend(cmd.String("backend"), dst); err != nil {
		return err
	}
	tally.Logger().Info("legend complete", "path", dst)
	return nil
}

func viewBox(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("viewbox: want 2 arguments, got %d", cmd.NArg())
	}
	return imaging.EditViewBox(cmd.Args().Get(0), cmd.Args().Get(1))
}

func convert(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("convert: want 2 arguments, got %d", cmd.NArg())
	}
	return imaging.ConvertSVG(cmd.Args().Get(0), cmd.Args().Get(1))
}

func combine(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 2 {
		return fmt.Errorf("combine: want at least 2 images, got %d", cmd.NArg())
	}
	return imaging.CombineFiles(cmd.String("output"), color.White, cmd.Args().Slice()...)
}
