package canopy

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// logOutput receives every diagnostic line. Defaults to stderr.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects diagnostics. A nil writer silences them.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[canopy] warning: "+format+"\n", args...)
}

func errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[canopy] error: "+format+"\n", args...)
}

// debugf only prints in debug mode.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(logOutput, "[canopy] debug: "+format+"\n", args...)
}

// precondition reports a broken caller contract. In debug mode it panics; in
// release mode it prints an error and returns false so the caller can bail
// out without touching any state.
func precondition(ok bool, format string, args ...any) bool {
	if ok {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if globalDebug {
		panic("canopy: " + msg)
	}
	errorf("%s", msg)
	return false
}

// debugCheckDisposed panics when a disposed node is used in a tree operation.
// Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("canopy debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		warnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more children than a menu normally
// needs.
const debugMaxChildCount = 256

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		warnf("node %q has %d children (threshold %d)", n.Name, len(n.children), debugMaxChildCount)
	}
}

// WriteHierarchy prints the subtree rooted at n, one node per line, indented
// by depth.
func (n *Node) WriteHierarchy(w io.Writer) {
	n.writeHierarchy(w, 0)
}

func (n *Node) writeHierarchy(w io.Writer, depth int) {
	state := ""
	if !n.Enabled {
		state = " (disabled)"
	}
	_, _ = fmt.Fprintf(w, "%s%s [%d] %s%s\n", strings.Repeat("  ", depth), n.Name, n.ID, n.kind, state)
	for _, child := range n.children {
		child.writeHierarchy(w, depth+1)
	}
}

// gizmoColor outlines node boxes when gizmos are enabled.
var gizmoColor = Color{1, 0, 1, 0.8}
