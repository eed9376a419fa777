// Package docnum issues sequential, date-keyed document numbers for bills
// and quotations.
package docnum

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Kind selects the number series.
type Kind string

const (
	KindBill      Kind = "INV"
	KindQuotation Kind = "QT"
)

// Format renders a document number for the given day and 1-based sequence
// index. Bills are padded to two digits, quotations to three.
func Format(kind Kind, day time.Time, seq int) string {
	width := 2
	if kind == KindQuotation {
		width = 3
	}
	return fmt.Sprintf("%s-%s-%0*d", kind, day.Format("0201"), width, seq)
}

// Sequencer hands out monotonically increasing sequence numbers per
// (kind, day). Unlike deriving the index from the current document count,
// the counter survives deletions and is safe under concurrent callers.
type Sequencer struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewSequencer returns an empty Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{counts: make(map[string]int)}
}

func seriesKey(kind Kind, day time.Time) string {
	return string(kind) + ":" + day.Format("0201")
}

// Next reserves and formats the next number in the series for day.
func (s *Sequencer) Next(kind Kind, day time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := seriesKey(kind, day)
	s.counts[key]++
	return Format(kind, day, s.counts[key])
}

// Seed advances the series counters past every already-issued number so a
// restored state never reuses one. Numbers that do not parse are skipped.
func (s *Sequencer) Seed(kind Kind, numbers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := string(kind) + "-"
	for _, n := range numbers {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		parts := strings.Split(n, "-")
		if len(parts) != 3 {
			continue
		}
		seq, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		key := string(kind) + ":" + parts[1]
		if seq > s.counts[key] {
			s.counts[key] = seq
		}
	}
}
