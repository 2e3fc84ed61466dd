package merge

import (
	"cmp"
	"iter"

	"github.com/PlotoZypresse/heapix"
)

// Sorted merges the given ascending item streams into a single stream in
// ascending (Key, ID) order. Sources must individually be sorted; the merged
// stream is then globally sorted. The iteration consumes the sources.
func Sorted[K cmp.Ordered](sources ...iter.Seq[heapix.Item[K]]) iter.Seq[heapix.Item[K]] {
	return func(yield func(heapix.Item[K]) bool) {
		if len(sources) == 0 {
			return
		}
		t := &tree[K]{nodes: make([]node[K], len(sources)*2)}
		for i, src := range sources {
			next, stop := iter.Pull(src)
			//nolint:gocritic // bounded by the number of sources, not a leak.
			defer stop()
			t.nodes[i+len(sources)].next = next
			t.moveNext(i + len(sources)) // Pull the first value of each source.
		}
		t.initialize()
		for {
			w := t.nodes[0].index
			if t.nodes[w].done || !yield(t.nodes[0].item) {
				return
			}
			t.moveNext(w)
			t.replayGames(w)
		}
	}
}

// A tournament tree laid out such that nodes N and N+1 have parent N/2.
// For k sources the leaves sit in positions k..2k-1 and the internal nodes
// in positions 1..k-1. Node 0 is special, holding the current winner.
type tree[K cmp.Ordered] struct {
	nodes []node[K]
}

type node[K cmp.Ordered] struct {
	index int                           // Leaf position of the loser, or of the winner for node 0.
	item  heapix.Item[K]                // Value copied from the loser, or from the winner for node 0.
	done  bool                          // The tracked source is exhausted; loses every contest.
	next  func() (heapix.Item[K], bool) // Only populated for leaf nodes.
}

// moveNext advances the leaf at the given position to its source's next
// value, flagging the leaf as done on exhaustion.
func (t *tree[K]) moveNext(pos int) {
	n := &t.nodes[pos]
	if v, ok := n.next(); ok {
		n.item = v
		return
	}
	n.done = true
}

// beats reports whether the value at node i wins the contest against the
// value at node j. Exhausted nodes lose to everything; ties go to j, keeping
// the contest deterministic.
func (t *tree[K]) beats(i, j int) bool {
	if t.nodes[j].done {
		return true
	}
	if t.nodes[i].done {
		return false
	}
	return t.nodes[i].item.Less(t.nodes[j].item)
}

func (t *tree[K]) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].item = t.nodes[winner].item
	t.nodes[0].done = t.nodes[winner].done
}

// playGame finds the winning leaf below pos, recording the loser in each
// internal node on the way. pos must be >= 1 and < len(t.nodes).
func (t *tree[K]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var winner, loser int
	if t.beats(left, right) {
		winner, loser = left, right
	} else {
		winner, loser = right, left
	}
	t.nodes[pos].index = loser
	t.nodes[pos].item = t.nodes[loser].item
	t.nodes[pos].done = t.nodes[loser].done
	return winner
}

// replayGames re-runs the contests on the path from the just-advanced winner
// leaf at pos up to the root, then stores the new winner in node 0.
func (t *tree[K]) replayGames(pos int) {
	winItem, winDone := t.nodes[pos].item, t.nodes[pos].done
	for n := parent(pos); n != 0; n = parent(n) {
		nd := &t.nodes[n]
		if !nd.done && (winDone || nd.item.Less(winItem)) {
			// The stored loser beats the incoming winner: swap them.
			nd.index, pos = pos, nd.index
			nd.item, winItem = winItem, nd.item
			nd.done, winDone = winDone, nd.done
		}
	}
	t.nodes[0].index = pos
	t.nodes[0].item = winItem
	t.nodes[0].done = winDone
}

func parent(i int) int { return i >> 1 }
