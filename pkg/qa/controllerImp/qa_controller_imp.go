package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"docqa/entities"
	"docqa/pkg/extract"
	"docqa/pkg/qa/service"
)

type QACtrl struct {
	s          service.QAService
	structured bool
	maxBytes   int64
	httpc      *http.Client
}

// New builds the QA controller. structured selects the response shape:
// answer objects with sources, or the degenerate strings-only list.
func New(s service.QAService, structured bool, maxBytes int64) *QACtrl {
	return &QACtrl{
		s:          s,
		structured: structured,
		maxBytes:   maxBytes,
		httpc:      &http.Client{Timeout: 60 * time.Second},
	}
}

type runReq struct {
	Documents string   `json:"documents"`
	Questions []string `json:"questions"`
}

func (h *QACtrl) Run(c echo.Context) error {
	var req runReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(req.Documents) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "documents url required"})
	}
	if len(req.Questions) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "questions required"})
	}

	tmp, err := h.download(req.Documents)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to download document: " + err.Error()})
	}
	defer h.cleanup(tmp)

	records, err := h.s.Run(extract.TextFromFile(tmp), req.Questions)
	if errors.Is(err, service.ErrEmptyDocument) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "failed to extract text from the provided document"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.shape(records))
}

func (h *QACtrl) Process(c echo.Context) error {
	var req struct {
		Documents string `json:"documents"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Documents) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "documents url required"})
	}

	tmp, err := h.download(req.Documents)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to download document: " + err.Error()})
	}
	defer h.cleanup(tmp)

	n, err := h.s.ProcessDocument(extract.TextFromFile(tmp), req.Documents)
	if errors.Is(err, service.ErrEmptyDocument) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "failed to extract text from the provided document"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"chunks": n})
}

func (h *QACtrl) Query(c echo.Context) error {
	var req struct {
		Questions []string `json:"questions"`
	}
	if err := c.Bind(&req); err != nil || len(req.Questions) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "questions required"})
	}

	// each question stands alone: one failure never aborts its siblings
	records := make([]entities.AnswerRecord, len(req.Questions))
	for i, q := range req.Questions {
		rec, err := h.s.Query(q)
		if err != nil {
			log.Printf("[qa] query %d failed: %v", i, err)
			rec = entities.AnswerRecord{Answer: "An error occurred: " + err.Error(), Sources: []string{}}
		}
		records[i] = rec
	}
	return c.JSON(http.StatusOK, h.shape(records))
}

func (h *QACtrl) shape(records []entities.AnswerRecord) map[string]any {
	if h.structured {
		return map[string]any{"answers": records}
	}
	answers := make([]string, len(records))
	for i, r := range records {
		answers[i] = r.Answer
	}
	return map[string]any{"answers": answers}
}

// download fetches the document to a temp file whose extension drives
// extraction. The caller removes the file.
func (h *QACtrl) download(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	resp, err := h.httpc.Get(rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	if resp.ContentLength > 0 && resp.ContentLength > h.maxBytes {
		return "", fmt.Errorf("document too large")
	}

	f, err := os.CreateTemp("", "docqa-*"+docExt(u, resp.Header.Get("Content-Type")))
	if err != nil {
		return "", err
	}
	limited := io.LimitedReader{R: resp.Body, N: h.maxBytes}
	if _, err := io.Copy(f, &limited); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func (h *QACtrl) cleanup(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("[qa] remove temp file %s: %v", path, err)
	}
}

func docExt(u *url.URL, contentType string) string {
	switch ext := strings.ToLower(path.Ext(u.Path)); ext {
	case ".pdf", ".html", ".htm", ".xlsx", ".docx", ".txt":
		return ext
	}
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/pdf"):
		return ".pdf"
	case strings.Contains(ct, "text/html"):
		return ".html"
	case strings.Contains(ct, "spreadsheetml"):
		return ".xlsx"
	case strings.Contains(ct, "text/plain"):
		return ".txt"
	}
	return ".pdf"
}
