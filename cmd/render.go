package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-aobench/pkg/imageio"
	"github.com/df07/go-aobench/pkg/renderer"
	"github.com/df07/go-aobench/pkg/scene"
)

// RenderFlags are shared by every command that renders frames
func RenderFlags() []cli.Flag {
	defaults := renderer.DefaultConfig()
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: defaults.Width,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: defaults.Height,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "subsamples",
			Value: defaults.Subsamples,
			Usage: "subsamples per pixel axis",
		},
		cli.IntFlag{
			Name:  "ao-samples",
			Value: defaults.AOSamples,
			Usage: "ambient occlusion samples per hemisphere axis",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: defaults.Workers,
			Usage: "render workers; 1 renders sequentially, 0 uses one per CPU",
		},
		cli.IntFlag{
			Name:  "tile-size",
			Value: defaults.TileSize,
			Usage: "tile edge in pixels for parallel rendering",
		},
	}
}

func renderConfig(ctx *cli.Context) renderer.Config {
	return renderer.Config{
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Subsamples: ctx.Int("subsamples"),
		AOSamples:  ctx.Int("ao-samples"),
		Workers:    ctx.Int("workers"),
		TileSize:   ctx.Int("tile-size"),
	}
}

var errMissingOutput = errors.New("missing output file")

// Render the benchmark scene into an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)
	loadEnv()

	out := ctx.String("out")
	if out == "" {
		return errMissingOutput
	}
	format, err := outputFormat(ctx.String("format"), out)
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(scene.NewDefaultScene(), renderConfig(ctx))
	if err != nil {
		return err
	}

	fb, stats, err := rt.Render()
	if err != nil {
		return err
	}

	if err = imageio.WriteFile(out, fb, format); err != nil {
		return err
	}
	logger.Noticef("wrote %s frame to %s", format, out)

	if size := ctx.Int("thumbnail"); size > 0 {
		thumb := thumbnailPath(out)
		if err = imageio.WriteThumbnail(thumb, fb, uint(size)); err != nil {
			return err
		}
		logger.Noticef("wrote %dpx thumbnail to %s", size, thumb)
	}

	if ctx.Bool("upload") {
		if err = uploadFrame(fb, format, filepath.Base(out)); err != nil {
			return err
		}
	}

	displayRenderStats(stats)
	return nil
}

// outputFormat resolves the format flag, falling back to the output extension.
// Paths without an extension are written as binary PPM.
func outputFormat(name, out string) (imageio.Format, error) {
	if name != "" {
		return imageio.ParseFormat(name)
	}
	if filepath.Ext(out) == "" {
		return imageio.FormatPPM, nil
	}
	return imageio.FormatFromPath(out)
}

// thumbnailPath returns <out without extension>_thumb.png
func thumbnailPath(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + "_thumb.png"
}

func uploadFrame(fb *renderer.FrameBuffer, format imageio.Format, key string) error {
	uploader, err := imageio.NewS3Uploader(s3ConfigFromEnv())
	if err != nil {
		return err
	}

	data, err := imageio.EncodeBytes(fb, format)
	if err != nil {
		return err
	}

	if err = uploader.Upload(context.Background(), key, data, format.ContentType()); err != nil {
		return err
	}
	logger.Noticef("uploaded %s to bucket %s (%d bytes)", key, uploader.Bucket(), len(data))
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", formatRenderStats(stats))
}

func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Primary rays", "Hits", "Occlusion rays", "Visibility", "Tiles", "Workers"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%d", stats.PrimaryHits),
		fmt.Sprintf("%d", stats.OcclusionRays),
		fmt.Sprintf("%02.1f %%", 100*stats.AverageVisibility()),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", fmt.Sprintf("%s", stats.Duration)})

	table.Render()
	return buf.String()
}
