package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/output"
	"github.com/umbrellabird/treewatch/internal/treetext"
)

// treeSummary aggregates one pass over a tree document.
type treeSummary struct {
	Lines     int            `json:"lines" yaml:"lines"`
	Nodes     int            `json:"nodes" yaml:"nodes"`
	Skipped   int            `json:"skipped" yaml:"skipped"`
	SkippedBy map[string]int `json:"skipped_by,omitempty" yaml:"skipped_by,omitempty"`
	MaxDepth  int            `json:"max_depth" yaml:"max_depth"`
	Folders   int            `json:"folders" yaml:"folders"`
	Leaves    int            `json:"leaves" yaml:"leaves"`
}

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize a tree listing",
	Long: `Parse tree text and report totals: lines read, nodes reconstructed,
lines skipped, maximum depth, and folder/leaf counts. A node counts
as a folder when it has children in the listing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	nodes, stats, err := treetext.CollectDocument(in)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	folders, leaves := countBranches(buildBranches(nodes))
	summary := treeSummary{
		Lines:     stats.Lines,
		Nodes:     stats.Nodes,
		Skipped:   stats.Skipped,
		SkippedBy: stats.SkippedBy,
		MaxDepth:  stats.MaxDepth,
		Folders:   folders,
		Leaves:    leaves,
	}

	if GetOutputFormat() == output.FormatTable {
		return printStructured(summaryTable(summary))
	}
	return printStructured(summary)
}

func summaryTable(s treeSummary) output.Table {
	rows := [][]string{
		{"lines", strconv.Itoa(s.Lines)},
		{"nodes", strconv.Itoa(s.Nodes)},
		{"skipped", strconv.Itoa(s.Skipped)},
	}

	reasons := make([]string, 0, len(s.SkippedBy))
	for reason := range s.SkippedBy {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		rows = append(rows, []string{"skipped_" + reason, strconv.Itoa(s.SkippedBy[reason])})
	}

	rows = append(rows,
		[]string{"max_depth", strconv.Itoa(s.MaxDepth)},
		[]string{"folders", strconv.Itoa(s.Folders)},
		[]string{"leaves", strconv.Itoa(s.Leaves)},
	)
	return output.Table{Headers: []string{"metric", "value"}, Rows: rows}
}
