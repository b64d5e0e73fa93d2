package fixture

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Scenario is one test case in the flat fixture format: a pattern and
// target encoded as SMILES strings, an options string of the form
// "overlap=0|1 permute=0|1", and the exact sequence of matches a Matcher
// bound to Target is expected to yield when constructed against Pattern
// with those options.
type Scenario struct {
	Pattern  string
	Options  string
	Target   string
	Expected [][]string // Expected[i] is the ordered target-id list of the i-th expected match
}

// Load reads a Scenario from r.
//
// Complexity: O(n) in the size of r.
func Load(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)

	header := make([]string, 0, 3)
	for len(header) < 3 && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		header = append(header, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	if len(header) < 3 {
		return nil, ErrMalformedHeader
	}

	s := &Scenario{Pattern: header[0], Options: header[1], Target: header[2]}

	sentinelSeen := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "()" {
			sentinelSeen = true
			break
		}
		ids, err := parseMatchLine(line)
		if err != nil {
			return nil, err
		}
		s.Expected = append(s.Expected, ids)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	if !sentinelSeen {
		return nil, ErrTruncated
	}

	return s, nil
}

// Write renders s in the same format Load accepts, terminated by the
// "()" sentinel.
//
// Complexity: O(n) in the size of s.
func (s *Scenario) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, s.Pattern); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, s.Options); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, s.Target); err != nil {
		return err
	}
	for _, ids := range s.Expected {
		if _, err := fmt.Fprintf(w, "(%s)\n", strings.Join(ids, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "()")
	return err
}

func parseMatchLine(line string) ([]string, error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return nil, ErrMalformedMatchLine
	}
	inner := strings.TrimSpace(line[1 : len(line)-1])
	if inner == "" {
		return nil, ErrMalformedMatchLine
	}
	return strings.Fields(inner), nil
}
