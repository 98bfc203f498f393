package cmd

import "github.com/umbrellabird/treewatch/internal/treetext"

// treeBranch is a nested view of the reconstructed hierarchy, consumed by
// the render and stats commands.
type treeBranch struct {
	Name     string        `json:"name" yaml:"name"`
	Children []*treeBranch `json:"children,omitempty" yaml:"children,omitempty"`
}

// buildBranches nests a flat node stream into sibling trees. Nesting uses
// each node's path length rather than its reported depth: the drive label
// of a Windows listing and its first-level entries both report depth zero,
// but their reconstructed paths already encode the parent chain.
func buildBranches(nodes []*treetext.Node) []*treeBranch {
	var roots []*treeBranch

	type level struct {
		depth  int
		branch *treeBranch
	}
	var stack []level

	for _, n := range nodes {
		depth := len(n.Path) - 1
		branch := &treeBranch{Name: n.Name}

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, branch)
		} else {
			parent := stack[len(stack)-1].branch
			parent.Children = append(parent.Children, branch)
		}
		stack = append(stack, level{depth: depth, branch: branch})
	}

	return roots
}

// countBranches returns the number of interior nodes and leaves.
func countBranches(branches []*treeBranch) (interior, leaves int) {
	for _, b := range branches {
		if len(b.Children) == 0 {
			leaves++
			continue
		}
		interior++
		i, l := countBranches(b.Children)
		interior += i
		leaves += l
	}
	return interior, leaves
}
