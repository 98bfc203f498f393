package treetext

import "strings"

// Node is one reconstructed entry of the hierarchy. Path holds every name
// from the root down to this node; ParentPath is the same sequence without
// the node's own name. Nodes are never mutated after emission.
type Node struct {
	Name       string   `json:"name" yaml:"name"`
	Depth      int      `json:"depth" yaml:"depth"`
	Path       []string `json:"path" yaml:"path"`
	ParentPath []string `json:"parent_path,omitempty" yaml:"parent_path,omitempty"`
}

// FullPath joins the node's path with the given separator.
func (n *Node) FullPath(sep string) string {
	return strings.Join(n.Path, sep)
}

type stackEntry struct {
	depth int
	name  string
}

// Reconstructor turns an ordered stream of tree lines into Nodes. The only
// state is the ancestor stack; entries carry strictly increasing depths
// from bottom to top. One instance serves one stream and is not safe for
// concurrent use.
type Reconstructor struct {
	stack []stackEntry
}

// NewReconstructor returns a Reconstructor with an empty ancestor stack.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{}
}

// Feed parses one line and, if it is a valid tree line, emits its Node.
// Invalid lines emit nothing and leave the stack untouched.
func (r *Reconstructor) Feed(line string) (*Node, bool) {
	parsed := ParseLine(line)
	if !parsed.Valid {
		return nil, false
	}
	return r.Push(parsed.Depth, parsed.Name), true
}

// Push records a node at the given depth and emits it. Ancestors whose
// depth is >= the new depth are popped first; depth jumps of more than one
// level are accepted as-is, the missing levels are simply absent from the
// resulting path.
func (r *Reconstructor) Push(depth int, name string) *Node {
	for len(r.stack) > 0 && r.stack[len(r.stack)-1].depth >= depth {
		r.stack = r.stack[:len(r.stack)-1]
	}

	parent := make([]string, len(r.stack))
	for i, e := range r.stack {
		parent[i] = e.name
	}

	path := make([]string, 0, len(parent)+1)
	path = append(path, parent...)
	path = append(path, name)

	r.stack = append(r.stack, stackEntry{depth: depth, name: name})

	node := &Node{Name: name, Depth: depth, Path: path}
	if len(parent) > 0 {
		node.ParentPath = parent
	}
	return node
}

// Root seeds the stream with a node that carries no connector, such as the
// drive label line of a Windows tree listing. It resets the stack and
// anchors the root below depth zero so that depth-zero entries nest under
// it instead of replacing it. The emitted node still reports depth zero.
func (r *Reconstructor) Root(name string) *Node {
	r.stack = append(r.stack[:0], stackEntry{depth: -1, name: name})
	return &Node{Name: name, Depth: 0, Path: []string{name}}
}

// Reset clears the ancestor stack so the instance can consume a new stream.
func (r *Reconstructor) Reset() {
	r.stack = r.stack[:0]
}
