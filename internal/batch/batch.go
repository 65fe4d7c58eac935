// Package batch runs the logo cleaning steps over a set of PNG files
// in place, backing each file up first so a run can be redone safely.
package batch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"logoclean"
)

// Options control a batch run. Files is relative to InputDir; leave
// it empty to process every PNG found there. A Threshold of 0 uses
// the default for the chosen strategy.
type Options struct {
	InputDir         string
	Files            []string
	Strategy         logoclean.Strategy
	Threshold        int
	RemoveBackground bool
	Trim             bool
	Enhance          bool
	Contrast         float64
	Sharpen          float64
	Backup           bool
	Log              *log.Logger
}

// Run processes each file in turn, reporting how many succeeded out
// of how many were attempted. A file that fails is logged and skipped
// rather than stopping the run; only being unable to read Dir at all
// is an error.
func Run(o Options) (int, int, error) {
	if o.Log == nil {
		o.Log = log.New(os.Stdout, "", 0)
	}
	if _, err := os.Stat(o.InputDir); err != nil {
		return 0, 0, fmt.Errorf("Error reading directory %s: %v", o.InputDir, err)
	}
	files := o.Files
	if len(files) == 0 {
		var err error
		files, err = findPNGs(o.InputDir)
		if err != nil {
			return 0, 0, err
		}
	}

	done := 0
	total := len(files)
	for i, name := range files {
		o.Log.Printf("[%d/%d] Processing %s", i+1, total, name)
		err := processOne(filepath.Join(o.InputDir, name), o)
		if err != nil {
			o.Log.Printf("Error processing %s: %v", name, err)
			continue
		}
		done++
	}
	return done, total, nil
}

// findPNGs lists the PNG files in dir, in name order, skipping the
// backup copies earlier runs leave behind.
func findPNGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("Error reading directory %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if strings.HasSuffix(stem, "_backup") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
