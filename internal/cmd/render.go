package cmd

import (
	"fmt"

	gotree "github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/treetext"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Re-render tree text as a canonical tree",
	Long: `Parse tree text and render the reconstructed hierarchy back as a
canonical tree. Useful for normalizing the compact or ASCII variants
some printers emit, and for checking what treewatch understood of its
input.

With --icons, folders (nodes with children) and files are prefixed
with the glyphs from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var renderIcons bool

func init() {
	renderCmd.Flags().BoolVar(&renderIcons, "icons", false, "Prefix entries with folder/file glyphs from config")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	nodes, _, err := treetext.CollectDocument(in)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	branches := buildBranches(nodes)
	if len(branches) == 0 {
		return fmt.Errorf("no tree structure found in input")
	}

	if structuredOutputRequested() {
		return printStructured(branches)
	}

	folderIcon, fileIcon := cfg.Icons()
	out := stdoutFromContext(cmd.Context())
	for _, b := range branches {
		root := gotree.New(branchLabel(b, folderIcon, fileIcon))
		addBranches(root, b.Children, folderIcon, fileIcon)
		if _, err := fmt.Fprint(out, root.Print()); err != nil {
			return err
		}
	}
	return nil
}

func addBranches(parent gotree.Tree, children []*treeBranch, folderIcon, fileIcon string) {
	for _, c := range children {
		item := parent.Add(branchLabel(c, folderIcon, fileIcon))
		addBranches(item, c.Children, folderIcon, fileIcon)
	}
}

func branchLabel(b *treeBranch, folderIcon, fileIcon string) string {
	if !renderIcons {
		return b.Name
	}
	if len(b.Children) > 0 {
		return folderIcon + " " + b.Name
	}
	return fileIcon + " " + b.Name
}
