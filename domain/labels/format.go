package labels

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soocke/boxlabeler-go/domain/annotation"
)

// TableHeader is the first row of the pixel-coordinate table.
var TableHeader = []string{"class_id", "class_name", "x1", "y1", "x2", "y2"}

// EncodeNormalized writes one "class cx cy w h" line per box with values
// normalized by the image size.
func EncodeNormalized(w io.Writer, boxes []annotation.Box, imageW, imageH int) error {
	bw := bufio.NewWriter(w)
	fw, fh := float64(imageW), float64(imageH)
	for _, b := range boxes {
		cx := (b.X1 + b.X2) / 2 / fw
		cy := (b.Y1 + b.Y2) / 2 / fh
		_, err := fmt.Fprintf(bw, "%d %.6f %.6f %.6f %.6f\n", b.ClassID, cx, cy, b.Width()/fw, b.Height()/fh)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeNormalized parses normalized label lines back into pixel boxes for
// an image of the given size. Lines without exactly five fields, or with
// fields that do not parse, are skipped and counted.
func DecodeNormalized(r io.Reader, imageW, imageH int) ([]annotation.Box, int, error) {
	var (
		boxes   []annotation.Box
		skipped int
	)
	fw, fh := float64(imageW), float64(imageH)
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return boxes, skipped, readErr
		}
		if b, ok := parseNormalized(line, fw, fh); ok {
			boxes = append(boxes, b)
		} else if strings.TrimSpace(line) != "" {
			skipped++
		}
		if readErr == io.EOF {
			return boxes, skipped, nil
		}
	}
}

func parseNormalized(line string, fw, fh float64) (annotation.Box, bool) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return annotation.Box{}, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return annotation.Box{}, false
	}
	var v [4]float64
	for i := range v {
		if v[i], err = strconv.ParseFloat(fields[i+1], 64); err != nil {
			return annotation.Box{}, false
		}
	}
	cx, cy, w, h := v[0]*fw, v[1]*fh, v[2]*fw, v[3]*fh
	return annotation.Box{
		X1:      cx - w/2,
		Y1:      cy - h/2,
		X2:      cx + w/2,
		Y2:      cy + h/2,
		ClassID: id,
	}, true
}

// WriteTable writes the pixel-coordinate CSV table. It is an export only
// and never read back.
func WriteTable(w io.Writer, boxes []annotation.Box, name func(int) string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableHeader); err != nil {
		return err
	}
	for _, b := range boxes {
		row := []string{
			strconv.Itoa(b.ClassID),
			name(b.ClassID),
			formatCoord(b.X1),
			formatCoord(b.Y1),
			formatCoord(b.X2),
			formatCoord(b.Y2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
