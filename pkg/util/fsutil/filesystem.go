package fsutil

import (
	"os"
	"path/filepath"

	recursiveCopy "github.com/otiai10/copy"
)

// WriteToFile writes data to a file and creates the parent directories
func WriteToFile(data []byte, filePath string) error {
	err := os.MkdirAll(filepath.Dir(filePath), 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

// Copy copies a file or directory to a destination path
func Copy(sourcePath string, targetPath string) error {
	err := os.MkdirAll(filepath.Dir(targetPath), 0755)
	if err != nil {
		return err
	}

	return recursiveCopy.Copy(sourcePath, targetPath)
}

// DirExists checks if a directory exists at the given path
func DirExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

// FileExistsNonEmpty checks if a regular file exists at the given path and
// has a size greater than zero
func FileExistsNonEmpty(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular() && stat.Size() > 0
}

// IsWritable checks if the given directory can be written to by creating and
// removing a probe file
func IsWritable(dir string) bool {
	probe := filepath.Join(dir, ".write-probe")
	file, err := os.Create(probe)
	if err != nil {
		return false
	}

	_ = file.Close()
	_ = os.Remove(probe)
	return true
}
