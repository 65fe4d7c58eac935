package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"logoclean"
	"logoclean/config"
	"logoclean/internal/batch"
)

const usage = `Usage: logowipe [-input-dir dir] [-files name] [-method name]

logowipe makes logo backgrounds transparent and trims the images to
their content, without backups or enhancement. The method selects how
background pixels are found: simple and aggressive threshold on
near-white, advanced adds edge detection and a colour distance test,
and ultra wipes whatever colour dominates the image. Each method runs
with its own default parameters.

Defaults come from ~/.config/logoclean/config.yaml when it exists.
`

// listFlag collects file names from repeated or comma separated flags.
type listFlag []string

func (f *listFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *listFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*f = append(*f, v)
		}
	}
	return nil
}

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalln(err)
	}

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s\n", usage)
		flag.PrintDefaults()
	}
	inputDir := flag.String("input-dir", cfg.InputDir, "directory containing the logo files")
	var files listFlag
	flag.Var(&files, "files", "files to process, relative to the input directory (comma separated or repeated)")
	method := flag.String("method", cfg.Method, "background removal method: simple, aggressive, advanced or ultra")
	flag.Parse()

	strategy, err := logoclean.ParseStrategy(*method)
	if err != nil {
		log.Fatalln(err)
	}
	if len(files) == 0 {
		files = cfg.Files
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Logo Background Removal Tool")
	fmt.Println(strings.Repeat("=", 60))
	if len(files) == 0 {
		fmt.Printf("Processing all PNG files from: %s\n", *inputDir)
	} else {
		fmt.Printf("Processing %d files from: %s\n", len(files), *inputDir)
	}
	fmt.Printf("Method: %s\n", strategy)
	fmt.Println(strings.Repeat("=", 60))

	done, total, err := batch.Run(batch.Options{
		InputDir:         *inputDir,
		Files:            files,
		Strategy:         strategy,
		RemoveBackground: true,
		Trim:             true,
	})
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Processing complete: %d/%d files processed successfully\n", done, total)
	if done != total {
		fmt.Println("Some images failed to process.")
		os.Exit(1)
	}
	fmt.Println("All images processed successfully!")
}
