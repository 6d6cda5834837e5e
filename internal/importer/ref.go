package importer

import (
	"fmt"
	"strings"
	"time"
)

// refSet hands out references like chase_20250103_GITHUBPROS. A repeat
// within one file gets a numeric suffix so same-day duplicates survive
// ledger de-duplication.
type refSet struct {
	format string
	seen   map[string]int
}

func newRefSet(format string) *refSet {
	return &refSet{format: format, seen: make(map[string]int)}
}

func (s *refSet) next(date time.Time, desc string) string {
	ref := makeRef(s.format, date, desc)
	s.seen[ref]++
	if n := s.seen[ref]; n > 1 {
		return fmt.Sprintf("%s_%d", ref, n)
	}
	return ref
}

func makeRef(format string, date time.Time, desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("%s_%s_%s", format, date.Format("20060102"), prefix)
}
