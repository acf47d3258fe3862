package spectrum

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteTSV writes a header line followed by numeric rows as tab-separated
// values, the interchange format read by the plotting tools downstream.
// Rows may have differing lengths (peak tables shrink with temperature).
func WriteTSV(w io.Writer, header []string, rows [][]float64) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	record := make([]string, 0, 8)
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
