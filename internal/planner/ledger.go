package planner

import "github.com/osse101/ArcLab_Go/internal/domain"

// ledgerEntry accumulates raw unit demand for one item
type ledgerEntry struct {
	item    domain.Item
	raw     int
	reasons []string
	seen    map[string]struct{}
}

// ledger is the per-run accumulator. It is owned by a single Aggregate call
// and never shared.
type ledger struct {
	entries map[int]*ledgerEntry
	order   []int
}

func newLedger() *ledger {
	return &ledger{entries: make(map[int]*ledgerEntry)}
}

// add folds quantity units of item into the ledger. A reason already recorded
// for the item is not repeated.
func (l *ledger) add(item domain.Item, quantity int, reason string) {
	entry, ok := l.entries[item.ID]
	if !ok {
		entry = &ledgerEntry{item: item, seen: make(map[string]struct{})}
		l.entries[item.ID] = entry
		l.order = append(l.order, item.ID)
	}

	entry.raw += quantity
	if _, dup := entry.seen[reason]; !dup {
		entry.seen[reason] = struct{}{}
		entry.reasons = append(entry.reasons, reason)
	}
}

// lines rounds every entry up to whole stacks, in first-contribution order
func (l *ledger) lines() []domain.PlanLine {
	out := make([]domain.PlanLine, 0, len(l.order))
	for _, id := range l.order {
		entry := l.entries[id]
		stacks := ceilDiv(entry.raw, entry.item.StackSize)
		out = append(out, domain.PlanLine{
			Item:            entry.item,
			RawQuantity:     entry.raw,
			Stacks:          stacks,
			RoundedQuantity: stacks * entry.item.StackSize,
			Reasons:         entry.reasons,
		})
	}
	return out
}

// ceilDiv divides rounding up. d must be positive.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}
