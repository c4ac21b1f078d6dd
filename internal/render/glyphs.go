package render

import (
	"bufio"
	"io"
)

// WriteGlyphs prints each row on its own line, drawing 0 cells as off and
// every other value as on.
func WriteGlyphs(w io.Writer, rows [][]uint8, off, on rune) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for _, c := range row {
			g := off
			if c != 0 {
				g = on
			}
			if _, err := bw.WriteRune(g); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
