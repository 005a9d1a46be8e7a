// Package fragio reads fragment lists and sequences for the assembler.
//
// Two layouts are accepted and may be mixed:
//
//   - FASTA: a ">name" header followed by sequence lines, concatenated;
//   - plain: one record per line.
//
// Blank lines and lines starting with '#' are ignored, surrounding white space
// is trimmed and symbols are upper-cased. Only A, C, G, T and N are accepted.
package fragio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

var (
	// ErrEmptyInput is returned when the input holds no records.
	ErrEmptyInput = errors.New("fragio: no records in input")

	// ErrBadSymbol is returned for a symbol outside the nucleotide alphabet.
	ErrBadSymbol = errors.New("fragio: invalid symbol")

	// ErrEmptyRecord is returned for a FASTA header without sequence lines.
	ErrEmptyRecord = errors.New("fragio: record has no sequence")
)

const (
	headerChar  = '>'
	commentChar = '#'
)

// Record is one named sequence or fragment.
type Record struct {
	Name string
	Seq  string
	Line int // line of the header, or of the sequence for plain input
}

// Records is the parsed content of one input, in input order.
type Records []Record

// Fragments returns the sequences of all records, in order.
func (rs Records) Fragments() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Seq
	}

	return out
}

// Sequence concatenates every record into one sequence.
func (rs Records) Sequence() string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Seq)
	}

	return b.String()
}

// ReadFile maps path read-only and parses it.
func ReadFile(path string) (Records, error) {
	var fp *os.File
	var err error
	if fp, err = os.Open(path); err != nil {
		return nil, err
	}
	defer fp.Close()

	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	// zero-length files cannot be mapped
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("fragio: map %s: %w", path, err)
	}
	defer mm.Unmap()

	rs, err := Parse(mm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rs, nil
}

// Parse reads records from data. Returned strings do not alias data.
func Parse(data []byte) (Records, error) {
	var (
		rs      Records
		seq     strings.Builder
		inFasta bool
		lineNo  int
	)

	// flush closes the open FASTA record.
	flush := func() error {
		if !inFasta {
			return nil
		}
		inFasta = false
		last := &rs[len(rs)-1]
		if seq.Len() == 0 {
			return fmt.Errorf("%w: %q at line %d", ErrEmptyRecord, last.Name, last.Line)
		}
		last.Seq = seq.String()
		seq.Reset()

		return nil
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == commentChar {
			continue
		}

		if line[0] == headerChar {
			if err := flush(); err != nil {
				return nil, err
			}
			inFasta = true
			rs = append(rs, Record{Name: string(bytes.TrimSpace(line[1:])), Line: lineNo})
			continue
		}

		s, err := normalize(line, lineNo)
		if err != nil {
			return nil, err
		}
		if inFasta {
			seq.WriteString(s)
			continue
		}
		rs = append(rs, Record{Name: "line " + strconv.Itoa(lineNo), Seq: s, Line: lineNo})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fragio: scan: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(rs) == 0 {
		return nil, ErrEmptyInput
	}

	return rs, nil
}

// normalize upper-cases line and checks its alphabet.
func normalize(line []byte, lineNo int) (string, error) {
	out := make([]byte, len(line))
	for i, c := range line {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'A', 'C', 'G', 'T', 'N':
			out[i] = c
		default:
			return "", fmt.Errorf("%w: %q at line %d, column %d", ErrBadSymbol, line[i], lineNo, i+1)
		}
	}

	return string(out), nil
}
