package report

import "chili-report/internal/domain"

// Deduper suppresses repeated recipes by identity key during report
// emission. First occurrence wins; later duplicates never displace earlier
// ones.
type Deduper struct {
	seen map[domain.Key]struct{}
}

func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[domain.Key]struct{})}
}

// Unique returns the recipes whose key has not been seen before, in input
// order.
func (d *Deduper) Unique(in []domain.Classified) []domain.Classified {
	out := make([]domain.Classified, 0, len(in))
	for _, r := range in {
		k := r.Key()
		if _, dup := d.seen[k]; dup {
			continue
		}
		d.seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
