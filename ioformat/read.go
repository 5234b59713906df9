package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hmatrix/strval"
)

// ReadCorpus reads one string per line from r: tab-separated
// "label\tsrc\tdata", with src optional ("label\tdata" also accepted).
// Blank lines are skipped. Each line becomes one strval.Value, indexed
// by its position among non-blank lines; if delim is non-nil and
// configured, every Value is symbolized immediately.
func ReadCorpus(r io.Reader, delim *strval.DelimTable) ([]*strval.Value, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []*strval.Value
	idx := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		label, src, data, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("ioformat: ReadCorpus: line %d: %w", lineNo, err)
		}

		v := strval.NewBytes([]byte(data), label, src, idx)
		if delim != nil && !delim.Uninitialized() {
			v.Symbolize(delim)
		}
		out = append(out, v)
		idx++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: ReadCorpus: %w", err)
	}

	return out, nil
}

// parseLine splits a corpus line into (label, src, data). The last
// tab-separated field is always data; the first is always the label;
// a middle field, if present, is src.
func parseLine(line string) (label float64, src, data string, err error) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) < 2 {
		return 0, "", "", fmt.Errorf("expected at least 2 tab-separated fields, got %d", len(fields))
	}

	label, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", "", fmt.Errorf("bad label %q: %w", fields[0], err)
	}

	if len(fields) == 3 {
		return label, fields[1], fields[2], nil
	}

	return label, "", fields[1], nil
}
