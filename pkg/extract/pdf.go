package extract

import (
	"bytes"
	"log"

	"github.com/ledongthuc/pdf"
)

func textFromPDF(path string) string {
	f, r, err := pdf.Open(path)
	if err != nil {
		log.Printf("[extract] open pdf %s: %v", path, err)
		return ""
	}
	defer f.Close()

	var buf bytes.Buffer
	body, err := r.GetPlainText()
	if err != nil {
		log.Printf("[extract] pdf text %s: %v", path, err)
		return ""
	}
	if _, err := buf.ReadFrom(body); err != nil {
		log.Printf("[extract] pdf read %s: %v", path, err)
		return ""
	}
	return buf.String()
}
