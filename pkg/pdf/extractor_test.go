package pdf

import (
	"os"
	"testing"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"report.pdf", true},
		{"REPORT.PDF", true},
		{"mixed.Pdf", true},
		{"notes.txt", false},
		{"archive.pdf.zip", false},
		{"pdf", false},
		{"", false},
		{"nested/dir/file.pdf", true},
	}

	for _, tt := range tests {
		if got := IsPDF(tt.filename); got != tt.want {
			t.Errorf("IsPDF(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	e := NewExtractor()
	if _, err := e.ExtractText("does/not/exist.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractTextNotAPDF(t *testing.T) {
	e := NewExtractor()
	path := t.TempDir() + "/fake.pdf"
	if err := writeFile(path, []byte("just some text, no pdf structure")); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ExtractText(path); err == nil {
		t.Error("expected error for non-PDF content")
	}
}
