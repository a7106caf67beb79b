package approval

import (
	"fmt"
	"io"
	"sort"

	"github.com/Jimyzzp/LibrePCB/pkg/sexpr"
)

// Set is an approval-key set in the exact shape Resolve consumes: the
// canonical text form of an ApprovalKey, with no associated value.
type Set map[string]struct{}

// LoadSet reads every top-level S-expression from r and re-renders it
// through sexpr.Canonical, so a hand-edited or differently-whitespaced
// approval file still normalizes to the same keys Resolve compares
// against.
func LoadSet(r io.Reader) (Set, error) {
	exprs, err := sexpr.ParseCanonical(r)
	if err != nil {
		return nil, fmt.Errorf("approval: load: %w", err)
	}
	set := make(Set, len(exprs))
	for _, e := range exprs {
		set[sexpr.Canonical(e)] = struct{}{}
	}
	return set, nil
}

// Save writes s to w as one canonical S-expression per record, keys
// sorted for a stable diff-friendly file.
func (s Set) Save(w io.Writer) error {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := io.WriteString(w, k+"\n"); err != nil {
			return fmt.Errorf("approval: save: %w", err)
		}
	}
	return nil
}
