package main

import (
	"image/png"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/effect"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview [effect]",
	Short: "Render a single-frame PNG thumbnail of an effect",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringP("out", "o", "preview.png", "output file")
	previewCmd.Flags().Int("cols", 64, "surface width in cells")
	previewCmd.Flags().Int("rows", 20, "surface height in cells")
	previewCmd.Flags().Float64("scale", 1.0, "display scale factor")
	previewCmd.Flags().Float64("at", 2.5, "effective time of the frame in seconds")
	previewCmd.Flags().Int("width", 0, "output pixel width (0 = native)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	name := "particles"
	if len(args) == 1 {
		name = args[0]
	}
	env := effect.Env{
		Accent: core.ParseHex(viper.GetString("accent")),
		Tier:   parameter.TierByName(viper.GetString("quality")),
	}
	renderer, err := effect.Build(name, nil, env)
	if err != nil {
		return err
	}

	cols, _ := cmd.Flags().GetInt("cols")
	rows, _ := cmd.Flags().GetInt("rows")
	scale, _ := cmd.Flags().GetFloat64("scale")
	surface := render.NewImageSurface(cols, rows, scale)
	if surface == nil {
		return errors.New("invalid preview dimensions")
	}

	at, _ := cmd.Flags().GetFloat64("at")
	renderer.Init(cols, rows)
	buf := render.NewBuffer(cols, rows)
	renderer.Render(time.Duration(at*float64(time.Second)), buf)
	buf.Flush(surface)

	img := surface.RGBA()
	if width, _ := cmd.Flags().GetInt("width"); width > 0 {
		b := img.Bounds()
		height := width * b.Dy() / b.Dx()
		img = surface.Export(width, height)
	}

	out, _ := cmd.Flags().GetString("out")
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	log.Info().Str("file", out).Str("effect", name).Msg("preview written")
	return nil
}
