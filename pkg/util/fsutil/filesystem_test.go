package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteToFileAndChecks(t *testing.T) {
	dir := t.TempDir()

	filePath := filepath.Join(dir, "nested", "file.txt")
	err := WriteToFile([]byte("content"), filePath)
	if err != nil {
		t.Fatalf("Error writing file: %v", err)
	}

	if !FileExistsNonEmpty(filePath) {
		t.Fatal("Expected file to exist and be non-empty")
	}
	if FileExistsNonEmpty(filepath.Join(dir, "does-not-exist")) {
		t.Fatal("Expected missing file to report non-existing")
	}

	emptyPath := filepath.Join(dir, "empty.txt")
	err = WriteToFile([]byte{}, emptyPath)
	if err != nil {
		t.Fatalf("Error writing empty file: %v", err)
	}
	if FileExistsNonEmpty(emptyPath) {
		t.Fatal("Expected empty file to report non-existing")
	}

	if !DirExists(filepath.Join(dir, "nested")) {
		t.Fatal("Expected nested dir to exist")
	}
	if DirExists(filePath) {
		t.Fatal("Expected file to not count as directory")
	}
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "source.json")
	err := os.WriteFile(source, []byte(`{"workflow": true}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "out", "target.json")
	err = Copy(source, target)
	if err != nil {
		t.Fatalf("Error copying file: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"workflow": true}` {
		t.Fatalf("Unexpected copied content: %s", string(data))
	}
}
