package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"logoclean"
)

const usage = `Usage: logosheet [-o out.pdf] [-t size] [-v] dir | file ...

logosheet builds a PDF contact sheet of logo PNGs, a grid of
thumbnails captioned with each file's name, pixel size and share of
opaque pixels. Give it a directory to sheet every PNG in it, backups
included, or list the files to include.
`

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s\n", usage)
		flag.PrintDefaults()
	}
	out := flag.String("o", "logos.pdf", "path to save the PDF to")
	tsize := flag.Int("t", 256, "thumbnail size in pixels")
	verbose := flag.Bool("v", false, "verbose")
	flag.Parse()

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		var n NullWriter
		verboselog = log.New(n, "", log.LstdFlags)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}

	files := flag.Args()
	if flag.NArg() == 1 {
		if info, err := os.Stat(flag.Arg(0)); err == nil && info.IsDir() {
			files = nil
			entries, err := os.ReadDir(flag.Arg(0))
			if err != nil {
				log.Fatalln("Error reading directory", flag.Arg(0), err)
			}
			for _, e := range entries {
				if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
					continue
				}
				files = append(files, filepath.Join(flag.Arg(0), e.Name()))
			}
		}
	}
	if len(files) == 0 {
		log.Fatalln("No PNG files to add")
	}

	report := logoclean.Report{ThumbSize: *tsize}
	if err := report.Setup(); err != nil {
		log.Fatalln("Error setting up PDF", err)
	}

	added := 0
	for _, path := range files {
		verboselog.Println("Adding", path)
		err := report.AddLogo(path)
		if err != nil {
			log.Println("Error adding", path, err)
			continue
		}
		added++
	}
	if added == 0 {
		log.Fatalln("No files could be added")
	}

	err := report.Save(*out)
	if err != nil {
		log.Fatalln("Error saving PDF", err)
	}
	fmt.Printf("Saved contact sheet of %d logos to %s\n", added, *out)
}
