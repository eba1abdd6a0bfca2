package parser

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// maxLineSize bounds a single line read by Lines.
const maxLineSize = 1024 * 1024

// Line is one split line of a file.
type Line struct {
	No     int // 1-indexed
	Fields []string
}

// Lines lazily reads r one line at a time. Iteration stops after the first
// error, which is yielded with a zero Line. Breaking out of the loop stops
// reading; closing r is left to the caller.
func Lines(r io.Reader, opts Options) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		no := 0
		for scanner.Scan() {
			no++
			fields, err := Split(scanner.Text(), no, opts)
			if err != nil {
				yield(Line{}, err)
				return
			}
			if !yield(Line{No: no, Fields: fields}, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Line{}, fmt.Errorf("failed to read line %d: %w", no+1, err))
		}
	}
}

// ReadAll reads and splits every line of r.
func ReadAll(r io.Reader, opts Options) ([][]string, error) {
	var rows [][]string
	for line, err := range Lines(r, opts) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, line.Fields)
	}
	return rows, nil
}
