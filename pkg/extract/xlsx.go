package extract

import (
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

func textFromXLSX(path string) string {
	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Printf("[extract] open xlsx %s: %v", path, err)
		return ""
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Printf("[extract] xlsx rows %s/%s: %v", path, sheet, err)
			continue
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, "\t"))
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
