package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	gerrors "github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripUTF8BOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// detectDelimiter picks tab, semicolon or comma by how often each occurs in the header line.
func detectDelimiter(header string) rune {
	tabs := strings.Count(header, "\t")
	semis := strings.Count(header, ";")
	commas := strings.Count(header, ",")
	switch {
	case tabs > semis && tabs > commas:
		return '\t'
	case semis > commas:
		return ';'
	default:
		return ','
	}
}

func firstLine(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return strings.TrimSuffix(string(data), "\r")
}

func (im *Importer) readDelimited(data []byte) (*Result, error) {
	data = stripUTF8BOM(data)
	comma := detectDelimiter(firstLine(data))
	im.log.WithField("delimiter", delimiterName(comma)).Debug("staffplan.importer.delimiter")

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if gerrors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, gerrors.Wrap(err, "read header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if !utf8.ValidString(header[i]) {
			return nil, gerrors.New("invalid header encoding")
		}
	}
	cols := mapColumns(header)
	im.log.WithFields(logrus.Fields{
		"headers": len(header),
		"mapped":  cols.mapped(),
	}).Debug("staffplan.importer.columns")

	res := &Result{}
	for {
		row, err := r.Read()
		if gerrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if gerrors.As(err, &perr) {
				res.Issues = append(res.Issues, LineIssue{Line: perr.StartLine, Reason: "staffplan.importer.line_skipped: " + perr.Err.Error()})
				continue
			}
			return nil, gerrors.Wrap(err, "read row")
		}
		if blank(row) {
			continue
		}
		line, _ := r.FieldPos(0)
		rec, issues := cols.record(row, line)
		res.Issues = append(res.Issues, issues...)
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

func delimiterName(r rune) string {
	if r == '\t' {
		return "TAB"
	}
	return string(r)
}
