package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BackupPath returns the path the backup copy of path is kept at,
// with "_backup" inserted before the file extension.
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_backup" + ext
}

// CreateBackup copies the file at path to its backup path, reporting
// whether a copy was made. If a backup already exists it is left
// alone, so the copy from before the first run survives any number of
// reruns.
func CreateBackup(path string) (bool, error) {
	backup := BackupPath(path)
	if _, err := os.Stat(backup); err == nil {
		return false, nil
	}

	in, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("Error opening %s for backup: %v", path, err)
	}
	defer in.Close()
	out, err := os.Create(backup)
	if err != nil {
		return false, fmt.Errorf("Error creating backup %s: %v", backup, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, fmt.Errorf("Error writing backup %s: %v", backup, err)
	}
	return true, out.Close()
}
