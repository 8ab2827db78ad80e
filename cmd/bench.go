package cmd

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-aobench/pkg/renderer"
	"github.com/df07/go-aobench/pkg/scene"
)

// BenchRun is the outcome of one benchmark render
type BenchRun struct {
	Stats  renderer.RenderStats
	Digest string
}

// Render the scene repeatedly and check that every run produces the same image.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	runs, err := runBench(renderConfig(ctx), ctx.Int("runs"))
	if err != nil {
		return err
	}

	logger.Noticef("benchmark results\n%s", formatBenchRuns(runs))
	return checkDigests(runs)
}

func runBench(config renderer.Config, n int) ([]BenchRun, error) {
	if n <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", n)
	}

	rt, err := renderer.NewRaytracer(scene.NewDefaultScene(), config)
	if err != nil {
		return nil, err
	}

	runs := make([]BenchRun, 0, n)
	for i := 0; i < n; i++ {
		fb, stats, err := rt.Render()
		if err != nil {
			return nil, err
		}
		runs = append(runs, BenchRun{Stats: stats, Digest: frameDigest(fb)})
		logger.Infof("run %d/%d finished in %v", i+1, n, stats.Duration)
	}
	return runs, nil
}

// frameDigest returns the hex SHA-256 of the frame bytes
func frameDigest(fb *renderer.FrameBuffer) string {
	sum := sha256.Sum256(fb.Pix)
	return hex.EncodeToString(sum[:])
}

func checkDigests(runs []BenchRun) error {
	for i := 1; i < len(runs); i++ {
		if runs[i].Digest != runs[0].Digest {
			return fmt.Errorf("run %d produced a different image (%s, expected %s)", i+1, runs[i].Digest, runs[0].Digest)
		}
	}
	return nil
}

func formatBenchRuns(runs []BenchRun) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Run", "Render time", "Rays/s", "SHA-256"})

	var total time.Duration
	for i, run := range runs {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s", run.Stats.Duration),
			fmt.Sprintf("%.0f", run.Stats.RaysPerSecond()),
			run.Digest,
		})
		total += run.Stats.Duration
	}

	var mean time.Duration
	if len(runs) > 0 {
		mean = total / time.Duration(len(runs))
	}
	table.SetFooter([]string{"", "MEAN", fmt.Sprintf("%s", mean), ""})

	table.Render()
	return buf.String()
}
