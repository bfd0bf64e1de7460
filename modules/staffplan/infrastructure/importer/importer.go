// Package importer turns position exports into records for the occupancy engine.
// Supported inputs are delimited text, Excel workbooks and JSON arrays of records.
package importer

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	gerrors "github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
)

var (
	ErrUnsupportedFormat = gerrors.New("unsupported input format")
	ErrMissingHeader     = gerrors.New("missing header")
	ErrNoWorksheet       = gerrors.New("no worksheet found")
)

// LineIssue is a problem found while reading one input line. Line is 1-based and
// counts the header. An empty Column means the whole line was skipped.
type LineIssue struct {
	Line   int    `json:"line"`
	Column string `json:"column,omitempty"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

type Result struct {
	Records []position.Record `json:"records"`
	Issues  []LineIssue       `json:"issues,omitempty"`
}

type Importer struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Importer {
	if log == nil {
		log = logrus.New()
	}
	return &Importer{log: log}
}

func (im *Importer) ReadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gerrors.Wrap(err, "open input")
	}
	defer func() { _ = f.Close() }()
	return im.Read(f, filepath.Base(path))
}

// Read dispatches on the extension of name, or on the sniffed content type when
// the extension is missing or unknown.
func (im *Importer) Read(r io.Reader, name string) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, gerrors.Wrap(err, "read input")
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !knownExtensions[ext] {
		sniffed := sniffExtension(data)
		im.log.WithFields(logrus.Fields{
			"file":      name,
			"extension": ext,
			"sniffed":   sniffed,
		}).Debug("staffplan.importer.sniffed")
		if sniffed != "" {
			ext = sniffed
		}
	}

	var res *Result
	switch ext {
	case ".csv", ".tsv", ".txt":
		res, err = im.readDelimited(data)
	case ".xlsx", ".xlsm":
		var rows [][]string
		if rows, err = readWorkbook(data); err == nil {
			res, err = im.fromRows(rows, 1)
		}
	case ".xls":
		var rows [][]string
		if rows, err = readLegacyWorkbook(data); err == nil {
			res, err = im.fromRows(rows, 1)
		}
	case ".json":
		res, err = readJSON(data)
	default:
		return nil, gerrors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return nil, gerrors.Wrapf(err, "import %s", name)
	}

	im.log.WithFields(logrus.Fields{
		"file":    name,
		"records": len(res.Records),
		"issues":  len(res.Issues),
	}).Info("staffplan.importer.loaded")
	for _, is := range res.Issues {
		im.log.WithFields(logrus.Fields{
			"line":   is.Line,
			"column": is.Column,
			"value":  is.Value,
		}).Warn(is.Reason)
	}
	return res, nil
}

var knownExtensions = map[string]bool{
	".csv": true, ".tsv": true, ".txt": true,
	".xlsx": true, ".xlsm": true, ".xls": true, ".json": true,
}

// sniffExtension maps detected content to one of the known extensions, or "" when
// the content is not a supported format.
func sniffExtension(data []byte) string {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"):
		return ".xlsx"
	case mt.Is("application/vnd.ms-excel"), mt.Is("application/x-ole-storage"):
		return ".xls"
	case mt.Is("application/json"):
		return ".json"
	case mt.Is("text/csv"), mt.Is("text/tab-separated-values"), mt.Is("text/plain"):
		return ".csv"
	}
	return ""
}

func readJSON(data []byte) (*Result, error) {
	var records []position.Record
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&records); err != nil {
		return nil, gerrors.Wrap(err, "decode records")
	}
	return &Result{Records: records}, nil
}

// fromRows maps a header row plus data rows to records. firstLine is the line
// number of rows[0].
func (im *Importer) fromRows(rows [][]string, firstLine int) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}
	cols := mapColumns(rows[0])
	im.log.WithFields(logrus.Fields{
		"headers": len(rows[0]),
		"mapped":  cols.mapped(),
	}).Debug("staffplan.importer.columns")

	res := &Result{Records: make([]position.Record, 0, len(rows)-1)}
	for i, row := range rows[1:] {
		line := firstLine + i + 1
		if blank(row) {
			continue
		}
		rec, issues := cols.record(row, line)
		res.Issues = append(res.Issues, issues...)
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func syntheticID(line int) string {
	return "row-" + strconv.Itoa(line)
}
