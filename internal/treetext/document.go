package treetext

import (
	"bufio"
	"io"
	"strings"
)

// Skip reasons recorded by ScanDocument for lines the scanner itself does
// not classify.
const (
	SkipBlank  = "blank"
	SkipHeader = "header"
	SkipSpacer = "spacer"
)

// Stats summarizes one pass over a tree document. Skipped lines are never
// fatal; they are counted here, per reason, so callers can surface them.
type Stats struct {
	Lines     int            `json:"lines" yaml:"lines"`
	Nodes     int            `json:"nodes" yaml:"nodes"`
	Skipped   int            `json:"skipped" yaml:"skipped"`
	MaxDepth  int            `json:"max_depth" yaml:"max_depth"`
	SkippedBy map[string]int `json:"skipped_by,omitempty" yaml:"skipped_by,omitempty"`
}

func (s *Stats) skip(reason string) {
	s.Skipped++
	if s.SkippedBy == nil {
		s.SkippedBy = make(map[string]int)
	}
	s.SkippedBy[reason]++
}

// isReportHeader matches the banner lines Windows tree prints before the
// listing itself ("Folder PATH listing", "Volume serial number is ...").
func isReportHeader(line string) bool {
	if strings.Contains(line, "PATH") && strings.Contains(line, "listing") {
		return true
	}
	return strings.Contains(line, "Volume serial number")
}

// ScanDocument streams a whole tree document through fn, one Node per
// entry. It applies the surrounding policy that the line scanner itself
// stays out of: report headers are skipped, the first plain line is taken
// as the root label (tree prints the drive or directory name with no
// connector), indented connector-less lines are emitted as nodes (tree /F
// lists files this way, with guide-only indentation), and spacer or
// otherwise unparseable lines are counted and dropped. fn returning an
// error aborts the scan.
func ScanDocument(r io.Reader, fn func(*Node) error) (Stats, error) {
	var stats Stats
	rec := NewReconstructor()
	rootSeen := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		stats.Lines++

		if line == "" {
			stats.skip(SkipBlank)
			continue
		}
		if !rootSeen && isReportHeader(line) {
			stats.skip(SkipHeader)
			continue
		}

		var node *Node
		parsed := ParseLine(line)
		switch {
		case parsed.Valid:
			node = rec.Push(parsed.Depth, parsed.Name)
			rootSeen = true
		case parsed.Reason == ReasonNoConnector && parsed.Depth > 0 && parsed.Name != "":
			// A file entry: indented under the structure but printed
			// without a connector of its own.
			node = rec.Push(parsed.Depth, parsed.Name)
			rootSeen = true
		case !rootSeen && !IsSpacer(line):
			node = rec.Root(line)
			rootSeen = true
		case IsSpacer(line):
			stats.skip(SkipSpacer)
			continue
		default:
			stats.skip(string(parsed.Reason))
			continue
		}

		stats.Nodes++
		if node.Depth > stats.MaxDepth {
			stats.MaxDepth = node.Depth
		}
		if err := fn(node); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// CollectDocument is ScanDocument buffered into a slice, for callers that
// need the whole hierarchy at once.
func CollectDocument(r io.Reader) ([]*Node, Stats, error) {
	var nodes []*Node
	stats, err := ScanDocument(r, func(n *Node) error {
		nodes = append(nodes, n)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return nodes, stats, nil
}
