// Package ast is the abstract syntax tree the parser builds and the
// evaluator rewrites in place. Parent links are required for step
// re-serialization but would create reference cycles if nodes pointed at
// each other directly; instead every tree lives in one Arena indexed by
// integer Ref, with Parent stored as a Ref, and the whole Arena is
// discarded wholesale at the end of a calculation.
package ast

import "github.com/oloc-go/oloc/internal/token"

// Kind is the closed set of AST node shapes.
type Kind int

const (
	Literal Kind = iota
	Group
	Binary
	Unary
	Call
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Group:
		return "Group"
	case Binary:
		return "Binary"
	case Unary:
		return "Unary"
	case Call:
		return "Call"
	default:
		return "Unknown"
	}
}

// Ref indexes a Node within an Arena. Refs start at 0 with the first node
// added; the sentinel for "no node" is NoRef (-1).
type Ref int

// NoRef is the sentinel "absent" reference (e.g. Node.Parent of the root).
const NoRef Ref = -1

// UnaryPosition distinguishes where a unary operator sits relative to its
// operand, made explicit here as its own field for Go's tagged-variant
// dispatch style rather than derived from the operator's value at use
// time.
type UnaryPosition int

const (
	Prefix UnaryPosition = iota
	Postfix
	Enclosing // |x|
)

// Node is one AST node. Only the fields relevant to Kind are meaningful;
// this favors a tagged-union-by-switch style over an interface-per-node-kind
// hierarchy, since the kind set here is small and permanently closed.
type Node struct {
	Kind Kind

	// Tokens is the node's own token list: the literal (+ optional
	// IrrationalParam) for Literal, the operator for Binary/Unary, the
	// function name for Call. Never empty for non-Group kinds.
	Tokens []token.Token

	// UnaryPos is meaningful only when Kind == Unary.
	UnaryPos UnaryPosition

	// Children holds child Refs: none for Literal (with or without an
	// IrrationalParam), 1 for Group, 2 for Binary, 1 for Unary, N for Call (including zero for a niladic call, though the
	// function table defines none).
	Children []Ref

	Parent Ref
}

// Arena owns every Node created while building and rewriting one
// expression's tree. It is never shared across calculations.
type Arena struct {
	nodes []Node
	root  Ref
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Root returns the tree's root Ref.
func (a *Arena) Root() Ref { return a.root }

// SetRoot designates ref as the tree's root.
func (a *Arena) SetRoot(ref Ref) { a.root = ref }

// Add appends node to the arena and returns its Ref. The node's Parent
// field is the caller's responsibility to set (or NoRef for a root).
func (a *Arena) Add(node Node) Ref {
	a.nodes = append(a.nodes, node)
	return Ref(len(a.nodes) - 1)
}

// Get returns the Node at ref. Refs are never invalidated by Add (append
// only), so this is safe to call throughout evaluation even as new nodes
// are appended by rewrites.
func (a *Arena) Get(ref Ref) *Node {
	return &a.nodes[ref]
}

// Len returns the number of nodes currently in the arena.
func (a *Arena) Len() int { return len(a.nodes) }

// Reparent sets child's Parent to parent, used when a rewrite
// grafts/replaces a subtree and must keep ascent-for-reserialization
// correct.
func (a *Arena) Reparent(child, parent Ref) {
	a.nodes[child].Parent = parent
}

// Arity returns the number of children Kind requires, used by the parser's
// post-build structural check: binary=2, unary=1, group=1, literal=0. Call
// arity is checked separately against the function table.
func (k Kind) Arity() (n int, fixed bool) {
	switch k {
	case Literal:
		return 0, true
	case Group:
		return 1, true
	case Binary:
		return 2, true
	case Unary:
		return 1, true
	case Call:
		return 0, false
	default:
		return 0, true
	}
}
