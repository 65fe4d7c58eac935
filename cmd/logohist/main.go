package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"logoclean"
)

const usage = `Usage: logohist [-t threshold] img graph.png

logohist draws the red, green and blue level histograms of an image,
with a marker at the white detection threshold. Useful for picking a
threshold when the default leaves background behind or eats into the
logo.
`

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s\n", usage)
		flag.PrintDefaults()
	}
	threshold := flag.Int("t", 240, "threshold to mark on the graph (0-255)")
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return
	}

	img, _, err := logoclean.OpenImage(flag.Arg(0))
	if err != nil {
		log.Fatalln("Error opening image", err)
	}

	fn := flag.Arg(1)
	f, err := os.Create(fn)
	if err != nil {
		log.Fatalln("Error creating file", fn, err)
	}
	defer f.Close()
	title := filepath.Base(flag.Arg(0))
	err = logoclean.Graph(img, title, *threshold, f)
	if err != nil {
		log.Fatalln("Error creating graph", err)
	}
}
