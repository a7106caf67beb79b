// Package approval filters a DRC run's messages against a set of
// previously approved keys and persists that set to/from the
// canonical S-expression text form defined by pkg/sexpr.
package approval

import (
	"sort"

	"github.com/Jimyzzp/LibrePCB/pkg/drcmsg"
	"github.com/Jimyzzp/LibrePCB/pkg/sexpr"
)

// Resolve splits messages into an approved count and the remainder,
// against the canonical approval-key text in approved. The remainder
// is sorted by severity descending, then by its localized message
// ascending, for presentation; the engine's own emission order is
// untouched on the slice the caller passed in.
func Resolve(messages []drcmsg.Message, approved map[string]struct{}) (approvedCount int, remaining []drcmsg.Message) {
	for _, m := range messages {
		key := sexpr.Canonical(m.ApprovalKey())
		if _, ok := approved[key]; ok {
			approvedCount++
			continue
		}
		remaining = append(remaining, m)
	}
	sort.Slice(remaining, func(i, j int) bool {
		si, sj := remaining[i].Severity(), remaining[j].Severity()
		if si != sj {
			return si > sj
		}
		return remaining[i].Message() < remaining[j].Message()
	})
	return approvedCount, remaining
}
