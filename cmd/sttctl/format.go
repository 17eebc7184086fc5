package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FileKind is one of the four query-file kinds spec.md §6.3 defines.
type FileKind string

const (
	KindFullyDynamicConnectivity FileKind = "fd_con"
	KindConnectivity             FileKind = "con"
	KindLCA                      FileKind = "lca"
	KindMST                      FileKind = "mst"
)

// ErrInvalidLine is the single error kind parsing errors surface as: it
// never reaches core structures, since parsing happens entirely outside
// them.
var ErrInvalidLine = errors.New("sttctl: invalid line")

// QueryFile is a fully parsed spec.md §6.3 file: a header plus a stream of
// typed data lines.
type QueryFile struct {
	Kind        FileKind
	NumVertices int
	NumEdges    int
	Queries     []Query
}

// ParseQueryFile reads and parses r in the spec.md §6.3 format.
func ParseQueryFile(r io.Reader) (*QueryFile, error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: line %d: missing header", ErrInvalidLine, lineNum+1)
	}
	lineNum++
	qf, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %q: %s", ErrInvalidLine, lineNum, scanner.Text(), err)
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		q, isComment, err := parseDataLine(qf.Kind, line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %s", ErrInvalidLine, lineNum, line, err)
		}
		if isComment {
			continue
		}
		qf.Queries = append(qf.Queries, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return qf, nil
}

func parseHeader(line string) (*QueryFile, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, fmt.Errorf("header must have 3 fields, got %d", len(fields))
	}
	kind := FileKind(fields[0])
	switch kind {
	case KindFullyDynamicConnectivity, KindConnectivity, KindLCA, KindMST:
	default:
		return nil, fmt.Errorf("unknown file kind %q", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("bad vertex count: %s", err)
	}
	m, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("bad edge count: %s", err)
	}

	return &QueryFile{Kind: kind, NumVertices: n, NumEdges: m}, nil
}

// parseDataLine parses one data line for the given file kind. isComment is
// true when the line carries no query (a "c ..." comment line in a
// fd_con/con/mst file).
func parseDataLine(kind FileKind, line string) (q Query, isComment bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, true, nil
	}

	switch kind {
	case KindFullyDynamicConnectivity, KindConnectivity:
		return parseConLine(fields)
	case KindLCA:
		return parseLCALine(fields)
	case KindMST:
		return parseMSTLine(fields)
	default:
		return nil, false, fmt.Errorf("unhandled file kind %q", kind)
	}
}

func parseConLine(fields []string) (Query, bool, error) {
	switch fields[0] {
	case "c":
		return nil, true, nil
	case "i":
		u, v, err := twoInts(fields)
		return insertQuery{u: u, v: v}, false, err
	case "d":
		u, v, err := twoInts(fields)
		return deleteQuery{u: u, v: v}, false, err
	case "p":
		u, v, err := twoInts(fields)
		return pathQuery{u: u, v: v}, false, err
	default:
		return nil, false, fmt.Errorf("unknown leading token %q", fields[0])
	}
}

func parseLCALine(fields []string) (Query, bool, error) {
	switch {
	case fields[0] == "l":
		u, v, err := twoInts(fields)
		return linkQuery{u: u, v: v}, false, err
	case fields[0] == "a":
		u, v, err := twoInts(fields)
		return lcaQuery{u: u, v: v}, false, err
	case fields[0] == "c" && len(fields) == 2:
		v, err := oneInt(fields)
		return cutQuery{v: v}, false, err
	case fields[0] == "c":
		return nil, true, nil
	default:
		return nil, false, fmt.Errorf("unknown leading token %q", fields[0])
	}
}

func parseMSTLine(fields []string) (Query, bool, error) {
	switch fields[0] {
	case "c":
		return nil, true, nil
	case "e":
		if len(fields) != 4 {
			return nil, false, fmt.Errorf("'e' line wants 3 fields, got %d", len(fields)-1)
		}
		u, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, false, err
		}
		v, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, false, err
		}
		w, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return nil, false, err
		}
		return mstEdgeQuery{u: u, v: v, w: w}, false, nil
	default:
		return nil, false, fmt.Errorf("unknown leading token %q", fields[0])
	}
}

func twoInts(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("%q line wants 2 fields, got %d", fields[0], len(fields)-1)
	}
	u, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, err
	}

	return u, v, nil
}

func oneInt(fields []string) (int, error) {
	return strconv.Atoi(fields[1])
}
