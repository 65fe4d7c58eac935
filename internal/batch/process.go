package batch

import (
	"fmt"
	"log"
	"os"

	"logoclean"
)

// Process runs the enabled cleaning steps on the file at path and
// writes the result back over it. The original is backed up alongside
// first unless backups are turned off.
func Process(path string, o Options) error {
	if o.Log == nil {
		o.Log = log.New(os.Stdout, "", 0)
	}
	if o.Backup {
		made, err := CreateBackup(path)
		if err != nil {
			return err
		}
		if made {
			o.Log.Printf("Created backup: %s", BackupPath(path))
		}
	}

	img, _, err := logoclean.OpenImage(path)
	if err != nil {
		return err
	}

	if o.RemoveBackground {
		img = logoclean.Wipe(img, o.Strategy, logoclean.Options{Threshold: o.Threshold})
	}
	if o.Trim {
		before := img.Bounds()
		img = logoclean.Trim(img)
		if after := img.Bounds(); after != before {
			o.Log.Printf("Trimmed %s from %dx%d to %dx%d", path,
				before.Dx(), before.Dy(), after.Dx(), after.Dy())
		}
	}
	if o.Enhance {
		img = logoclean.Enhance(img, o.Contrast, o.Sharpen)
	}

	return logoclean.SavePNG(path, img)
}

// processOne wraps Process so that a crash on one file is reported as
// an error and the rest of the batch keeps going.
func processOne(path string, o Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return Process(path, o)
}
