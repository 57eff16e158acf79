package main

import (
	"flag"
	"fmt"

	"github.com/beevik/cmd"
	"github.com/golang/glog"
	"github.com/nfractal/newtongen/fractal"
	"github.com/nfractal/newtongen/newton"
)

func cmdRender(s cmd.Selection) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	height := fs.Int("height", 0, "output image height in pixels (required, >0)")
	output := fs.String("output", "", "output PNG path (required)")
	function := fs.String("function", "", "complex function of x to render (required)")
	coord := fs.String("coord", "-1,-1;1,1", "viewport corners x1,y1;x2,y2")
	paletteExpr := fs.String("palette", "", "palette expression; enables color mode")
	shadow := fs.Float64("shadow", 0, "shadow intensity (requires -palette)")
	verbose := fs.Bool("verbose", false, "print a convergence summary")
	negate := fs.Bool("negate", false, "invert grayscale intensity (conflicts with -palette)")

	if err := fs.Parse(s.Args); err != nil {
		return err
	}

	if *height <= 0 {
		return fmt.Errorf("render: -height must be > 0")
	}
	if *output == "" {
		return fmt.Errorf("render: -output is required")
	}
	if *function == "" {
		return fmt.Errorf("render: -function is required")
	}
	if *shadow != 0 && *paletteExpr == "" {
		return fmt.Errorf("render: -shadow requires -palette")
	}
	if *negate && *paletteExpr != "" {
		return fmt.Errorf("render: -negate conflicts with -palette")
	}

	vp, err := newton.ParseCoord(*coord)
	if err != nil {
		return err
	}

	req := fractal.Request{
		Function: *function,
		Height:   *height,
		Viewport: vp,
		Palette:  *paletteExpr,
		Shadow:   *shadow,
		Negate:   *negate,
	}

	result, err := fractal.RenderToFile(req, *output)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Printf("%d/%d pixels failed to converge (%.2f%%)\n",
			result.NonConverged, result.TotalPixels, result.Ratio()*100)
	}
	glog.Infof("render: wrote %s", *output)
	return nil
}
