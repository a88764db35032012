// SPDX-License-Identifier: MIT

package mtx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// initialLineBuffer is the scanner's starting buffer; it grows up to maxLineBytes.
const initialLineBuffer = 64 * 1024

// lineReader is a forward-only line source that tracks 1-based line numbers.
// bufio.ScanLines drops a trailing '\r', so CRLF input reads like LF input.
type lineReader struct {
	sc   *bufio.Scanner
	line int // number of the line most recently returned
}

func newLineReader(r io.Reader, maxLineBytes int) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(initialLineBuffer, maxLineBytes)), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the following line. ok is false at end of input or on a read
// failure; err distinguishes the two (nil at a clean end of input).
func (lr *lineReader) next() (line string, ok bool, err error) {
	if !lr.sc.Scan() {
		if scanErr := lr.sc.Err(); scanErr != nil {
			if errors.Is(scanErr, bufio.ErrTooLong) {
				return "", false, lineErrorf(lr.line+1, ErrLineTooLong, "exceeds buffer")
			}
			return "", false, fmt.Errorf("line %d: read: %w", lr.line+1, scanErr)
		}
		return "", false, nil
	}
	lr.line++

	return lr.sc.Text(), true, nil
}
