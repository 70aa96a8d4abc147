package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/intersect"
	"gonum.org/v1/plot/vg"
)

var log = logging.MustGetLogger("intersect/cmd")

var format = logging.MustStringFormatter(
	"%{time:15:04:05.000} %{module} ▶ %{level:.4s} %{message}",
)

type Intersect struct {
	Format  string  `short:"f" default:"text" desc:"Input format, text or geojson"`
	Output  string  `short:"o" desc:"Plot output filename, format is derived from the extension (svg, png, pdf, eps, ...)"`
	Size    float64 `default:"12" desc:"Plot width and height in centimeters"`
	Verbose bool    `short:"v" desc:"Verbose logging"`
	Input   string  `index:"0" desc:"Input file, reads from stdin if empty or -"`
}

func main() {
	root := argp.NewCmd(&Intersect{}, "Find a pair of intersecting line segments using exact integer arithmetic")
	root.Parse()
	root.PrintHelp()
}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	backendLeveled := logging.AddModuleLevel(backendFormatter)
	if verbose {
		backendLeveled.SetLevel(logging.DEBUG, "")
	} else {
		backendLeveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(backendLeveled)
}

func (cmd *Intersect) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Size <= 0.0 {
		return fmt.Errorf("size must be positive")
	}

	r := io.Reader(os.Stdin)
	name := "stdin"
	if cmd.Input != "" && cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r, name = f, cmd.Input
	}

	segs, err := readSegments(r, cmd.Format)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debugf("read %d segments from %s", len(segs), name)

	t := time.Now()
	pair, ok := intersect.Find(segs)
	log.Debugf("sweep finished in %v", time.Since(t))
	if err := writeResult(os.Stdout, pair, ok); err != nil {
		return err
	}

	if cmd.Output != "" {
		var highlight *intersect.Pair
		if ok {
			highlight = &pair
		}
		p, err := intersect.Plot(segs, highlight)
		if err != nil {
			return err
		}
		size := vg.Length(cmd.Size) * vg.Centimeter
		if err := p.Save(size, size, cmd.Output); err != nil {
			return err
		}
		log.Infof("plot written to %s", cmd.Output)
	}
	return nil
}
