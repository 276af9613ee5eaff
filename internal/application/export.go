package application

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/submission"
)

// Export streams every record matching the filter as CSV. Pagination
// does not apply; the export always covers the full filtered set.
func (s *SubmissionService) Export(sc submission.Schema, q submission.ListQuery, w io.Writer) error {
	items, err := s.Repos.Submission.ListAll(sc, q)
	if err != nil {
		return err
	}
	return WriteCSV(w, sc, items)
}

// WriteCSV renders records using the entity's export column mapping.
func WriteCSV(w io.Writer, sc submission.Schema, items []submission.Submission) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(sc.CSVColumns))
	for i, col := range sc.CSVColumns {
		header[i] = col.Header
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(sc.CSVColumns))
	for _, item := range items {
		view := item.View()
		for i, col := range sc.CSVColumns {
			row[i] = csvValue(view[col.Source])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case []string:
		return strings.Join(t, "; ")
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = csvValue(e)
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
