// Package main renders demonstration charts to PNG and GIF files.
package main

import (
	"log/slog"
	"math"
	"math/rand"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/plotters-go/plotters"
	"github.com/plotters-go/plotters/chart"
	"github.com/plotters-go/plotters/coord"
	"github.com/plotters-go/plotters/font"
)

var (
	outputPath string
	width      int
	height     int
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plotdemo",
		Short: "Render demonstration charts",
		Long: `plotdemo renders sample charts (line, histogram, 3-D scatter,
animated sine wave) to image files, exercising the coordinate and
rasterizer subsystems end to end.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				plotters.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	rootCmd.PersistentFlags().IntVar(&width, "width", 640, "Image width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", 480, "Image height in pixels")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "line",
			Short: "Line chart of sin(x) on a linear axis",
			RunE:  runLine,
		},
		&cobra.Command{
			Use:   "histogram",
			Short: "Histogram over a segmented integer axis",
			RunE:  runHistogram,
		},
		&cobra.Command{
			Use:   "scatter3d",
			Short: "Projected 3-D scatter plot",
			RunE:  runScatter3D,
		},
		&cobra.Command{
			Use:   "anim",
			Short: "Animated sine wave GIF, one frame per goroutine",
			RunE:  runAnim,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCanvas returns a white pixmap and the inset plot area.
func newCanvas() (*plotters.Pixmap, plotters.DrawingArea) {
	pm := plotters.NewPixmap(width, height)
	pm.Clear(plotters.White)
	area := plotters.NewDrawingArea(width, height).Margin(40, 40, 60, 20)
	return pm, area
}

func output(def string) string {
	if outputPath != "" {
		return outputPath
	}
	return def
}

func runLine(cmd *cobra.Command, args []string) error {
	pm, area := newCanvas()
	c := chart.New(pm, area,
		coord.NewF64Range(0, 4*math.Pi),
		coord.NewF64Range(-1.2, 1.2))

	if err := c.DrawMesh(chart.DefaultMesh[float64, float64]()); err != nil {
		return err
	}
	c.Caption("y = sin(x)", font.NewStyle(font.Default(18), plotters.Black))

	palette := plotters.Palette99()
	var samples []chart.Sample[float64, float64]
	for x := 0.0; x <= 4*math.Pi; x += 0.05 {
		samples = append(samples, chart.Sample[float64, float64]{X: x, Y: math.Sin(x)})
	}
	style := plotters.Stroked(palette.Pick(0), 2)
	if err := c.DrawLineSeries(samples, style); err != nil {
		return err
	}
	return pm.SavePNG(output("line.png"))
}

func runHistogram(cmd *cobra.Command, args []string) error {
	pm, area := newCanvas()

	xr := coord.NewIntRange(0, 10)
	seg := coord.NewSegmented[int](xr)
	yr := coord.NewF64Range(0, 30)

	rng := rand.New(rand.NewSource(42))
	counts := make(map[int]float64)
	for i := 0; i < 200; i++ {
		counts[rng.Intn(10)]++
	}

	h := chart.NewHistogram(pm, area, seg, yr)
	style := plotters.Solid(plotters.Palette99().Pick(3).WithAlpha(0.8))
	if err := h.Draw(counts, style); err != nil {
		return err
	}
	return pm.SavePNG(output("histogram.png"))
}

func runScatter3D(cmd *cobra.Command, args []string) error {
	pm, area := newCanvas()
	c := chart.New3D(pm, area,
		coord.NewF64Range(-1, 1),
		coord.NewF64Range(-1, 1),
		coord.NewF64Range(-1, 1))

	if err := c.DrawAxes(plotters.Stroked(plotters.Black, 1)); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(7))
	cmap := plotters.ViridisMap()
	var samples []chart.Sample3[float64, float64, float64]
	for i := 0; i < 300; i++ {
		samples = append(samples, chart.Sample3[float64, float64, float64]{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		})
	}
	for i := range samples {
		style := plotters.Solid(cmap.At(float64(i) / float64(len(samples))))
		if err := c.DrawScatter(samples[i:i+1], 3, style); err != nil {
			return err
		}
	}
	return pm.SavePNG(output("scatter3d.png"))
}

func runAnim(cmd *cobra.Command, args []string) error {
	const frameCount = 30
	frames := make([]*plotters.Pixmap, frameCount)

	// Each render pass owns its pixmap and coordinate objects, so
	// frames can render in parallel.
	var wg sync.WaitGroup
	errs := make([]error, frameCount)
	for i := 0; i < frameCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pm := plotters.NewPixmap(width, height)
			pm.Clear(plotters.White)
			area := plotters.NewDrawingArea(width, height).Margin(40, 40, 60, 20)
			c := chart.New(pm, area,
				coord.NewF64Range(0, 4*math.Pi),
				coord.NewF64Range(-1.2, 1.2))

			phase := 2 * math.Pi * float64(i) / frameCount
			var samples []chart.Sample[float64, float64]
			for x := 0.0; x <= 4*math.Pi; x += 0.05 {
				samples = append(samples, chart.Sample[float64, float64]{X: x, Y: math.Sin(x + phase)})
			}
			if err := c.DrawMesh(chart.DefaultMesh[float64, float64]()); err != nil {
				errs[i] = err
				return
			}
			errs[i] = c.DrawLineSeries(samples, plotters.Stroked(plotters.Palette99().Pick(0), 2))
			frames[i] = pm
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return plotters.SaveGIF(output("anim.gif"), frames, 4)
}
