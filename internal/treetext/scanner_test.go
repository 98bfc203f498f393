package treetext

import "testing"

func TestParseLine(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		depth int
		want  string
	}{
		{name: "root level unicode", line: "└── config.yaml", depth: 0, want: "config.yaml"},
		{name: "root level tee", line: "├── cmd", depth: 0, want: "cmd"},
		{name: "one guide level", line: "│   ├── server.go", depth: 1, want: "server.go"},
		{name: "blank unit level", line: "    └── main.go", depth: 1, want: "main.go"},
		{name: "compact connector", line: "├─a", depth: 0, want: "a"},
		{name: "compact nested", line: "│  ├─b", depth: 1, want: "b"},
		{name: "compact last sibling", line: "│  └─c", depth: 1, want: "c"},
		{name: "ascii windows tree", line: "+---Windows", depth: 0, want: "Windows"},
		{name: "ascii nested", line: "|   +---System32", depth: 1, want: "System32"},
		{name: "ascii last", line: "|   \\---drivers", depth: 1, want: "drivers"},
		{name: "ascii deep", line: "|   |   +---etc", depth: 2, want: "etc"},
		{name: "dash then space", line: "├─ notes.txt", depth: 0, want: "notes.txt"},
		{name: "name starting with dash", line: "├── --help.md", depth: 0, want: "--help.md"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseLine(tc.line)
			if !got.Valid {
				t.Fatalf("expected valid line, got reason %q", got.Reason)
			}
			if got.Name != tc.want {
				t.Fatalf("expected name %q, got %q", tc.want, got.Name)
			}
			if got.Depth != tc.depth {
				t.Fatalf("expected depth %d, got %d", tc.depth, got.Depth)
			}
		})
	}
}

// The defect being guarded against: a connector sitting mid-unit must not
// cause the fixed-width scan to eat the name's leading characters.
func TestParseLineKeepsLeadingNameCharacters(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{line: "│  │      │  ├─models", want: "models"},
		{line: "│  │      │  ├─trackers", want: "trackers"},
	}

	for _, tc := range cases {
		got := ParseLine(tc.line)
		if !got.Valid {
			t.Fatalf("expected valid line for %q, got reason %q", tc.line, got.Reason)
		}
		if got.Name != tc.want {
			t.Fatalf("expected name %q, got %q", tc.want, got.Name)
		}
	}
}

func TestParseLineCompressedIndentDepth(t *testing.T) {
	// Four structural units precede the connector: "│  ", "    ", "   ", "│  ".
	got := ParseLine("│  │      │  ├─models")
	if got.Depth != 4 {
		t.Fatalf("expected depth 4, got %d", got.Depth)
	}
}

func TestParseLineInvalid(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		reason InvalidReason
	}{
		{name: "empty", line: "", reason: ReasonNoConnector},
		{name: "plain text", line: "Folder PATH listing", reason: ReasonNoConnector},
		{name: "root label", line: "D:.", reason: ReasonNoConnector},
		{name: "guides only", line: "│   │   ", reason: ReasonNoConnector},
		{name: "truncated unit", line: "│  ", reason: ReasonTruncated},
		{name: "truncated after level", line: "│   │ ", reason: ReasonTruncated},
		{name: "bare connector", line: "├── ", reason: ReasonEmptyName},
		{name: "text after guide", line: "│   readme", reason: ReasonNoConnector},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseLine(tc.line)
			if got.Valid {
				t.Fatalf("expected invalid line, got name %q depth %d", got.Name, got.Depth)
			}
			if got.Reason != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, got.Reason)
			}
		})
	}
}

func TestParseLineCarriesConnectorlessRemainder(t *testing.T) {
	cases := []struct {
		line  string
		depth int
		name  string
	}{
		{line: "│   │   file1.txt", depth: 2, name: "file1.txt"},
		{line: "|       file2.txt", depth: 2, name: "file2.txt"},
		{line: "│   readme", depth: 1, name: "readme"},
		{line: "D:.", depth: 0, name: "D:."},
	}

	for _, tc := range cases {
		got := ParseLine(tc.line)
		if got.Valid || got.Reason != ReasonNoConnector {
			t.Fatalf("expected no_connector for %q, got %+v", tc.line, got)
		}
		if got.Depth != tc.depth {
			t.Fatalf("expected depth %d for %q, got %d", tc.depth, tc.line, got.Depth)
		}
		if got.Name != tc.name {
			t.Fatalf("expected remainder %q for %q, got %q", tc.name, tc.line, got.Name)
		}
	}
}

func TestParseLineIdempotent(t *testing.T) {
	line := "│  │      │  ├─models"
	first := ParseLine(line)
	second := ParseLine(line)
	if first != second {
		t.Fatalf("expected identical results, got %+v then %+v", first, second)
	}
}

func TestParseLineDepthIndependentOfName(t *testing.T) {
	for _, name := range []string{"a", "some very long directory name", "├weird", "│bar"} {
		got := ParseLine("│   │   ├── " + name)
		if !got.Valid {
			t.Fatalf("expected valid line for name %q", name)
		}
		if got.Depth != 2 {
			t.Fatalf("expected depth 2 for name %q, got %d", name, got.Depth)
		}
	}
}

func TestIsSpacer(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{line: "│", want: true},
		{line: "│   │", want: true},
		{line: "|   ", want: true},
		{line: "", want: false},
		{line: "│   ├── x", want: false},
		{line: "readme", want: false},
	}

	for _, tc := range cases {
		if got := IsSpacer(tc.line); got != tc.want {
			t.Fatalf("IsSpacer(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
