package command

import (
	"sort"
	"strings"
	"sync"
)

// Tree is the live registry of named abstract command roots. Compiled
// predicates re-resolve nodes through it on every invocation, so reads must
// be cheap and safe under concurrent mutation.
type Tree struct {
	mu       sync.RWMutex
	roots    map[string]*Node
	onRemove []func(label string)
}

func NewTree() *Tree {
	return &Tree{roots: make(map[string]*Node)}
}

// Insert registers a root node under its own name. Re-inserting a name
// replaces the previous root.
func (t *Tree) Insert(n *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.roots[n.Name] = n
}

// Remove unregisters a root and invokes the removal notifiers. Removing an
// unknown label is a no-op and fires no notifiers.
func (t *Tree) Remove(label string) {
	t.mu.Lock()
	_, ok := t.roots[label]
	if ok {
		delete(t.roots, label)
	}
	notifiers := t.onRemove
	t.mu.Unlock()

	if !ok {
		return
	}
	for _, fn := range notifiers {
		fn(label)
	}
}

// OnRemove registers a notifier invoked after a root is removed. Used to
// drive native-tree pruning when an abstract command is unregistered.
func (t *Tree) OnRemove(fn func(label string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onRemove = append(t.onRemove, fn)
}

// Labels returns the registered root labels in sorted order.
func (t *Tree) Labels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	labels := make([]string, 0, len(t.roots))
	for label := range t.roots {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// NamedNode returns the root registered under label, or nil. Namespaced
// labels ("plugin:cmd") resolve by their bare name.
func (t *Tree) NamedNode(label string) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.roots[StripNamespace(label)]
}

// NodeAt re-resolves a node by its structural name-path from a root label.
// Returns nil as soon as any step is missing; callers use that as the signal
// that the node has been removed out-of-band.
func (t *Tree) NodeAt(path []string) *Node {
	if len(path) == 0 {
		return nil
	}
	current := t.NamedNode(path[0])
	for _, name := range path[1:] {
		if current == nil {
			return nil
		}
		current = childNamed(current, name)
	}
	return current
}

func childNamed(n *Node, name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// StripNamespace reduces "plugin:cmd" to "cmd". Labels without a namespace
// pass through unchanged.
func StripNamespace(label string) string {
	if idx := strings.IndexByte(label, ':'); idx >= 0 {
		return label[idx+1:]
	}
	return label
}
