package filemgr

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type memFile struct{ *bytes.Reader }

func (memFile) Close() error { return nil }

func TestSaveUploadStoresFile(t *testing.T) {
	old := UploadRoot
	UploadRoot = t.TempDir()
	defer func() { UploadRoot = old }()

	data := []byte("passport scan bytes")
	header := &multipart.FileHeader{Filename: "passport.pdf", Size: int64(len(data))}

	path, err := SaveUpload(memFile{bytes.NewReader(data)}, header, CatDocument)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("stored path must keep the extension, got %s", path)
	}
	got, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("stored content mismatch: %v", err)
	}
}

// A client can claim any header.Size it likes; the stream itself decides.
func TestSaveUploadRejectsUnderreportedSize(t *testing.T) {
	old := UploadRoot
	UploadRoot = t.TempDir()
	defer func() { UploadRoot = old }()

	payload := bytes.Repeat([]byte("a"), MaxUploadSize+1)
	header := &multipart.FileHeader{Filename: "huge.pdf", Size: 10}

	_, err := SaveUpload(memFile{bytes.NewReader(payload)}, header, CatDocument)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	entries, _ := os.ReadDir(filepath.Join(UploadRoot, string(CatDocument)))
	if len(entries) != 0 {
		t.Fatalf("oversized upload left %d files behind", len(entries))
	}
}

func TestSaveUploadRejectsExtension(t *testing.T) {
	old := UploadRoot
	UploadRoot = t.TempDir()
	defer func() { UploadRoot = old }()

	header := &multipart.FileHeader{Filename: "script.exe", Size: 3}
	_, err := SaveUpload(memFile{bytes.NewReader([]byte("MZ"))}, header, CatDocument)
	if !errors.Is(err, ErrInvalidExtension) {
		t.Fatalf("expected ErrInvalidExtension, got %v", err)
	}
}
