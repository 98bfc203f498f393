// Package treetext reconstructs hierarchies from the line-art output of
// "tree"-style directory printers. It understands both the Unicode box
// drawing style ("│   ├── name") and the ASCII style produced by
// Windows tree ("|   +---name").
package treetext

// unitWidth is the nominal rune width of one indentation unit in standard
// tree output: "│   ", "    ", "├── ", "└── " are all four runes wide.
// Compact printers squeeze units narrower ("│  "), so a unit may end early
// at the next vertical guide or at the branch connector.
const unitWidth = 4

// InvalidReason classifies why a line could not be parsed as a tree line.
type InvalidReason string

const (
	// ReasonNone marks a valid line.
	ReasonNone InvalidReason = ""
	// ReasonNoConnector means no branch connector appears at the
	// indentation boundary.
	ReasonNoConnector InvalidReason = "no_connector"
	// ReasonTruncated means the line ended partway through an indentation unit.
	ReasonTruncated InvalidReason = "truncated_indentation"
	// ReasonEmptyName means a connector was found but nothing followed it.
	ReasonEmptyName InvalidReason = "empty_name"
)

// ParsedLine is the result of scanning a single line. Name is set for
// valid lines, and also for ReasonNoConnector lines, where it holds the
// text after the indentation boundary.
type ParsedLine struct {
	Depth  int
	Name   string
	Valid  bool
	Reason InvalidReason
}

func isConnector(r rune) bool {
	return r == '├' || r == '└' || r == '+' || r == '\\'
}

func isDashFill(r rune) bool {
	return r == '─' || r == '-'
}

func isBar(r rune) bool {
	return r == '│' || r == '|'
}

func isGuide(r rune) bool {
	return isBar(r) || r == ' ' || r == '\t'
}

// ParseLine scans one line of tree output and separates its indentation
// prefix from the node name.
//
// The cursor walks the prefix one indentation unit at a time. A unit
// nominally spans unitWidth runes, but it ends early at the next vertical
// guide (compressed indentation) or at the branch connector. The connector
// marks the boundary at its exact rune offset: the depth scan must never
// advance past it to the unit boundary, because when the connector sits
// mid-unit the rest of that unit already belongs to the name, and eating
// it drops the name's leading characters.
func ParseLine(line string) ParsedLine {
	runes := []rune(line)
	n := len(runes)
	depth := 0
	idx := 0

	for idx < n {
		r := runes[idx]

		if isConnector(r) {
			name := stripConnectorPrefix(runes[idx:])
			if name == "" {
				return ParsedLine{Depth: depth, Reason: ReasonEmptyName}
			}
			return ParsedLine{Depth: depth, Name: name, Valid: true}
		}

		if !isGuide(r) {
			// Plain text at the boundary. The remainder is carried as the
			// name so callers can decide what to do with connector-less
			// entries, such as the file lines of a tree /F listing.
			return ParsedLine{Depth: depth, Name: string(runes[idx:]), Reason: ReasonNoConnector}
		}

		// Consume one indentation unit starting at the cursor. The unit
		// ends early at a second vertical bar, a connector, or the first
		// name character.
		end := idx + unitWidth
		if end > n {
			end = n
		}
		stop := -1
		for i := idx + 1; i < end; i++ {
			if isBar(runes[i]) || !isGuide(runes[i]) {
				stop = i
				break
			}
		}
		if stop < 0 {
			if end-idx < unitWidth {
				// Line ran out mid-unit; stop the scan at end-of-line
				// instead of reading past it.
				return ParsedLine{Depth: depth, Reason: ReasonTruncated}
			}
			stop = end
		}

		depth++
		idx = stop
	}

	return ParsedLine{Depth: depth, Reason: ReasonNoConnector}
}

// stripConnectorPrefix removes the connector glyph, its dash-fill run, and
// at most one separator space. It stops at the first rune that is none of
// those, so characters belonging to the name are never consumed.
func stripConnectorPrefix(rs []rune) string {
	i := 0
	if i < len(rs) && isConnector(rs[i]) {
		i++
	}
	for i < len(rs) && isDashFill(rs[i]) {
		i++
	}
	if i < len(rs) && rs[i] == ' ' {
		i++
	}
	return string(rs[i:])
}

// IsSpacer reports whether a line carries only vertical guides and
// whitespace, such as the lone "│" lines some printers emit between
// sibling groups.
func IsSpacer(line string) bool {
	seen := false
	for _, r := range line {
		if !isGuide(r) {
			return false
		}
		seen = true
	}
	return seen
}
