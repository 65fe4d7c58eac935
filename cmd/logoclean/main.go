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

const usage = `Usage: logoclean [-input-dir dir] [-files name] [-threshold n]
                 [-no-background-removal] [-no-trim] [-no-enhance] [-no-backup]

logoclean cleans up logo PNGs in place. The white background is made
transparent, the empty margin around the content is trimmed away, and
a mild contrast and sharpening boost is applied. Each file is copied
to a _backup sibling before it is first overwritten.

Defaults come from ~/.config/logoclean/config.yaml when it exists.
Give -files a comma separated list, or repeat it once per file; with
no -files and no configured list, every PNG in the input directory is
processed.
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

func enabled(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
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
	threshold := flag.Int("threshold", cfg.Threshold, "white background detection threshold (0-255)")
	nowipe := flag.Bool("no-background-removal", !cfg.RemoveBackground, "skip white background removal")
	notrim := flag.Bool("no-trim", !cfg.Trim, "skip whitespace trimming")
	noenhance := flag.Bool("no-enhance", !cfg.Enhance, "skip image enhancement")
	nobackup := flag.Bool("no-backup", !cfg.Backup, "skip creating backup files")
	flag.Parse()

	if len(files) == 0 {
		files = cfg.Files
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Logo Enhancement Tool")
	fmt.Println(strings.Repeat("=", 60))
	if len(files) == 0 {
		fmt.Printf("Processing all PNG files from: %s\n", *inputDir)
	} else {
		fmt.Printf("Processing %d files from: %s\n", len(files), *inputDir)
	}
	fmt.Printf("Background removal: %s\n", enabled(!*nowipe))
	fmt.Printf("Whitespace trimming: %s\n", enabled(!*notrim))
	fmt.Printf("Image enhancement: %s\n", enabled(!*noenhance))
	fmt.Printf("Create backups: %s\n", enabled(!*nobackup))
	fmt.Printf("Background threshold: %d\n", *threshold)
	fmt.Println(strings.Repeat("=", 60))

	done, total, err := batch.Run(batch.Options{
		InputDir:         *inputDir,
		Files:            files,
		Strategy:         logoclean.Simple,
		Threshold:        *threshold,
		RemoveBackground: !*nowipe,
		Trim:             !*notrim,
		Enhance:          !*noenhance,
		Contrast:         cfg.Contrast,
		Sharpen:          cfg.Sharpen,
		Backup:           !*nobackup,
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
