package dashboard

import (
	"sort"

	"github.com/WangWilly/birdboard/pkgs/dashboard/dashdto"
)

////////////////////////////////////////////////////////////////////////////////

// MAX_MESSAGES caps the merged message column
const MAX_MESSAGES = 5

// mergeMessages combines both sides of the message box into one list sorted
// newest first and truncated to MAX_MESSAGES. The sort is stable: the API only
// gives second granularity, so same-second messages keep their input order.
// Neither input slice is mutated.
func mergeMessages(received, sent []dashdto.Message) []dashdto.Message {
	merged := make([]dashdto.Message, 0, len(received)+len(sent))
	merged = append(merged, received...)
	merged = append(merged, sent...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})

	if len(merged) > MAX_MESSAGES {
		merged = merged[:MAX_MESSAGES]
	}
	return merged
}
