package extract

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// TextFromFile extracts the full textual content of a document, dispatching
// on file extension. Failures and unsupported formats come back as an empty
// string; the caller treats empty text as the domain error.
func TextFromFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return textFromPDF(path)
	case ".html", ".htm":
		return textFromHTML(path)
	case ".xlsx":
		return textFromXLSX(path)
	case ".docx":
		// DOCX processing not implemented
		log.Printf("[extract] docx not supported: %s", path)
		return ""
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[extract] read %s: %v", path, err)
			return ""
		}
		return string(b)
	}
}
