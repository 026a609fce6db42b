// Package edgelist loads weighted edges from delimited text into a core.Graph.
//
// Each record is "src<delim>dest<delim>weight". Blank lines and lines whose
// first character is '#' are skipped. Surrounding whitespace in a field is
// ignored.
package edgelist

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/massimo93/graph-priority-queue/core"
)

// DefaultDelimiter separates fields when none is configured.
const DefaultDelimiter = ','

const (
	commentChar = '#'
	fieldCount  = 3
)

var (
	// ErrMalformedLine indicates a record that is not a valid src,dest,weight triple.
	ErrMalformedLine = errors.New("edgelist: malformed line")

	// ErrBadDelimiter indicates a delimiter the reader cannot split on.
	ErrBadDelimiter = errors.New("edgelist: invalid delimiter")
)

// Loader reads edge lists into string-labelled graphs.
type Loader struct {
	Delimiter rune
	Logger    log.FieldLogger
}

// NewLoader returns a Loader splitting on delim and reporting per-record
// progress at debug level through logger. A nil logger uses the logrus
// standard logger.
func NewLoader(delim rune, logger log.FieldLogger) *Loader {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &Loader{Delimiter: delim, Logger: logger}
}

// LoadFile opens path and loads it with Load.
func (l *Loader) LoadFile(path string, g *core.Graph[string]) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open edge list %s", path)
	}
	defer f.Close()

	n, err := l.Load(f, g)
	if err != nil {
		return n, errors.Wrapf(err, "load %s", path)
	}

	return n, nil
}

// Load adds every record of r to g with AddEdgeForced and returns the number
// of records read. Loading stops at the first bad record; edges already added
// stay in g.
func (l *Loader) Load(r io.Reader, g *core.Graph[string]) (int, error) {
	if !validDelimiter(l.Delimiter) {
		return 0, errors.Wrapf(ErrBadDelimiter, "%q", l.Delimiter)
	}

	reader := csv.NewReader(r)
	reader.Comma = l.Delimiter
	reader.Comment = commentChar
	reader.FieldsPerRecord = fieldCount
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	n := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return n, errors.Wrapf(ErrMalformedLine, "line %d: %v", perr.Line, perr.Err)
			}
			return n, errors.Wrap(err, "read edge list")
		}
		line, _ := reader.FieldPos(0)

		src, dest := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		if src == "" || dest == "" {
			return n, errors.Wrapf(ErrMalformedLine, "line %d: empty vertex label", line)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || math.IsNaN(weight) {
			return n, errors.Wrapf(ErrMalformedLine, "line %d: bad weight %q", line, record[2])
		}
		if err = g.AddEdgeForced(src, dest, weight); err != nil {
			return n, errors.Wrapf(err, "line %d", line)
		}

		n++
		l.Logger.WithFields(log.Fields{
			"line":   line,
			"src":    src,
			"dest":   dest,
			"weight": weight,
		}).Debug("edge loaded")
	}
}

// ParseDelimiter turns a flag value into a delimiter rune. It accepts a
// single character or the escape `\t`.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 || !validDelimiter(runes[0]) {
		return 0, errors.Wrapf(ErrBadDelimiter, "%q", s)
	}

	return runes[0], nil
}

func validDelimiter(r rune) bool {
	switch r {
	case 0, commentChar, '"', '\r', '\n', utf8.RuneError:
		return false
	}

	return true
}
