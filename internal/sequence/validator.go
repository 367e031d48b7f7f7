// Package sequence validates raw sequence text and derives composition
// statistics over validated sequences.
package sequence

import (
	"bufio"
	"io"
	"strings"

	"proteinlab/pkg/domain"
)

// Normalize converts raw sequence text into a validated Sequence. A
// single leading FASTA header line (starting with '>') is stripped and
// discarded, all whitespace is removed, and remaining characters are
// uppercased. Returns InvalidSequenceError when the result is empty or
// contains a byte outside the amino acid catalog.
func Normalize(raw string) (domain.Sequence, error) {
	body := raw
	if strings.HasPrefix(strings.TrimLeft(body, " \t"), ">") {
		if idx := strings.IndexByte(body, '\n'); idx >= 0 {
			body = body[idx+1:]
		} else {
			body = ""
		}
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}

	normalized := b.String()
	if normalized == "" {
		return "", domain.InvalidSequenceError{Empty: true}
	}
	for i := 0; i < len(normalized); i++ {
		if !domain.IsResidue(normalized[i]) {
			return "", domain.InvalidSequenceError{Char: normalized[i], Position: i}
		}
	}
	return domain.Sequence(normalized), nil
}

// ParseFASTA reads FASTA text and returns the name and validated
// sequence of the first entry. The name is the first whitespace-limited
// token of the header line; input without a header is accepted and
// yields an empty name. Later entries are ignored, matching the upload
// contract of taking the first record.
func ParseFASTA(r io.Reader) (string, domain.Sequence, error) {
	var (
		name string
		body strings.Builder
		seen bool
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if seen {
				break
			}
			seen = true
			fields := strings.Fields(strings.TrimPrefix(line, ">"))
			if len(fields) > 0 {
				name = fields[0]
			}
			continue
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", "", err
	}
	seq, err := Normalize(body.String())
	if err != nil {
		return "", "", err
	}
	return name, seq, nil
}
