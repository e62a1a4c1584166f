package extract

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

// genericExtractor handles plain text attachments in-process. CSV files get a
// row/column summary with a short preview; other UTF-8 content passes through
// truncated to MaxGenericBytes.
type genericExtractor struct{}

var _ Extractor = (*genericExtractor)(nil)

func (e *genericExtractor) ExtractText(_ context.Context, att model.Attachment) (string, error) {
	if len(att.Data) == 0 {
		return "", fmt.Errorf("empty attachment")
	}
	if !utf8.Valid(att.Data) {
		return "", fmt.Errorf("attachment is not valid utf-8 text")
	}

	if strings.HasSuffix(strings.ToLower(att.Name), ".csv") {
		if summary, err := summarizeCSV(att.Data); err == nil {
			return summary, nil
		}
		// Malformed CSV still reads fine as plain text.
	}

	data := att.Data
	if len(data) > MaxGenericBytes {
		data = data[:MaxGenericBytes]
		// Do not cut a rune in half at the boundary.
		for len(data) > 0 && !utf8.Valid(data) {
			data = data[:len(data)-1]
		}
	}
	return string(data), nil
}

func summarizeCSV(data []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("empty csv")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CSV with %d rows, %d columns. Header: %s\n",
		len(records), len(records[0]), strings.Join(records[0], ", "))

	preview := records[1:]
	if len(preview) > MaxCSVPreviewRows {
		preview = preview[:MaxCSVPreviewRows]
	}
	for _, row := range preview {
		b.WriteString(strings.Join(row, ", "))
		b.WriteByte('\n')
	}
	if len(records)-1 > MaxCSVPreviewRows {
		fmt.Fprintf(&b, "... %d more rows\n", len(records)-1-MaxCSVPreviewRows)
	}
	return b.String(), nil
}
