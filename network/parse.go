// SPDX-License-Identifier: MIT

package network

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// recordRx matches one textual record; both "tunnels lead to valves" and
// "tunnel leads to valve" are accepted.
var recordRx = regexp.MustCompile(`^Valve (\S+) has flow rate=(-?\d+); tunnels? leads? to valves? ?(.*)$`)

// ParseRecords reads one record per non-blank line.
//
// Errors: ErrBadRecord (with the 1-based line number) for a line that does
// not match the record grammar or whose rate does not fit an int64; read
// errors from r are wrapped as-is.
//
// Complexity: O(total input size).
func ParseRecords(r io.Reader) ([]Record, error) {
	var (
		out  []Record
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", methodParse, line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodParse, err)
	}

	return out, nil
}

// Parse reads records from r and builds a Network starting at start.
func Parse(r io.Reader, start string) (*Network, error) {
	recs, err := ParseRecords(r)
	if err != nil {
		return nil, err
	}

	return NewNetwork(recs, start)
}

// parseRecord turns a single trimmed line into a Record.
func parseRecord(text string) (Record, error) {
	m := recordRx.FindStringSubmatch(text)
	if m == nil {
		return Record{}, fmt.Errorf("%q: %w", text, ErrBadRecord)
	}
	rate, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("rate %q: %w", m[2], ErrBadRecord)
	}

	var tunnels []string
	if list := strings.TrimSpace(m[3]); list != "" {
		for _, name := range strings.Split(list, ",") {
			tunnels = append(tunnels, strings.TrimSpace(name))
		}
	}

	return Record{Name: m[1], Rate: rate, Tunnels: tunnels}, nil
}
