package console

// trieNode is a single node of the completion trie. Children are indexed by
// alphabet slot and exclusively owned by their parent; the node graph is a
// true tree, never shared and never cyclic, so the garbage collector frees
// exactly the subtree when the last reference goes away.
type trieNode struct {
	children []*trieNode
	terminal bool   // a word ends exactly at this node
	prefix   string // the characters traversed from the root to reach this node
}

// Trie is a prefix tree over a fixed ASCII alphabet. It supports whole-word
// insertion and the two queries the line editor needs: longest unambiguous
// continuation of a prefix, and enumeration of every completion below the
// point where the continuation stops.
//
// A Trie is not safe for concurrent mutation. The intended usage inserts all
// words at setup time and only reads afterwards.
type Trie struct {
	root  *trieNode
	alpha *Alphabet
}

// NewTrie creates an empty trie accepting words drawn from the characters
// in valid. It returns ErrEmptyAlphabet if valid contains no printable
// ASCII characters.
func NewTrie(valid string) (*Trie, error) {
	alpha, err := NewAlphabet(valid)
	if err != nil {
		return nil, err
	}
	return &Trie{alpha: alpha}, nil
}

func (t *Trie) newNode(prefix string) *trieNode {
	return &trieNode{
		children: make([]*trieNode, t.alpha.Size()),
		prefix:   prefix,
	}
}

// Insert adds word to the trie. Every character must belong to the
// alphabet; otherwise the whole insertion is rejected with an
// InvalidCharError and the trie is left unchanged. Re-inserting an existing
// word is a no-op.
func (t *Trie) Insert(word string) error {
	// Validate the whole word up front so a rejected insertion never leaves
	// a partial branch without a terminal mark at its end.
	for i := 0; i < len(word); i++ {
		if t.alpha.Slot(word[i]) == slotInvalid {
			return &InvalidCharError{Word: word, Char: word[i]}
		}
	}

	if t.root == nil {
		t.root = t.newNode("")
	}
	node := t.root
	for i := 0; i < len(word); i++ {
		slot := t.alpha.Slot(word[i])
		if node.children[slot] == nil {
			node.children[slot] = t.newNode(word[:i+1])
		}
		node = node.children[slot]
	}
	node.terminal = true
	return nil
}

// Find walks the trie along prefix and then follows the longest unambiguous
// continuation: single-child chains are extended until a terminal node or a
// branch point is reached.
//
// It returns the number of candidate paths at the stopping point, the
// extended prefix, and, when listAll is set, the matching words. A count of
// 1 means the extended prefix is a complete word and the final answer for
// the given input, even when longer words extend past it. A count of 0
// means prefix is not in the trie at all. Enumeration is only performed
// when listAll is set, since it walks the whole subtree; matches come back
// in alphabet order.
//
// Find returns ErrCorruptTrie if it reaches a non-terminal node with no
// children, which correct insertion never produces.
func (t *Trie) Find(prefix string, listAll bool) (int, string, []string, error) {
	if t.root == nil {
		return 0, "", nil, nil
	}

	node := t.root
	for i := 0; i < len(prefix); i++ {
		slot := t.alpha.Slot(prefix[i])
		if slot == slotInvalid || node.children[slot] == nil {
			return 0, "", nil, nil
		}
		node = node.children[slot]
	}

	n, stop, err := t.longestUnambiguous(node)
	if err != nil {
		return 0, "", nil, err
	}

	var matches []string
	if listAll {
		if n == 1 {
			// The extension is a complete word: report it alone rather than
			// every longer word it happens to prefix.
			matches = []string{stop.prefix}
		} else {
			matches = collect(stop, nil)
		}
	}
	return n, stop.prefix, matches, nil
}

// Words returns every word in the trie in alphabet order.
func (t *Trie) Words() []string {
	if t.root == nil {
		return nil
	}
	return collect(t.root, nil)
}

// longestUnambiguous follows single-child chains from node. It stops at the
// first terminal node (count 1, the final answer) or at the first branch
// point (count = number of live children).
func (t *Trie) longestUnambiguous(node *trieNode) (int, *trieNode, error) {
	for {
		if node.terminal {
			return 1, node, nil
		}
		live := liveChildren(node)
		switch len(live) {
		case 0:
			return 0, nil, ErrCorruptTrie
		case 1:
			node = node.children[live[0]]
		default:
			return len(live), node, nil
		}
	}
}

// liveChildren returns the slots of node's non-nil children in ascending
// order.
func liveChildren(node *trieNode) []int {
	var live []int
	for slot, child := range node.children {
		if child != nil {
			live = append(live, slot)
		}
	}
	return live
}

// collect appends the cached prefix text of every terminal node at or below
// node, depth first in slot order, yielding a deterministic alphabet-order
// listing.
func collect(node *trieNode, matches []string) []string {
	if node.terminal {
		matches = append(matches, node.prefix)
	}
	for _, child := range node.children {
		if child != nil {
			matches = collect(child, matches)
		}
	}
	return matches
}
