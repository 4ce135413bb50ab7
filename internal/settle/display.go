package settle

// selfLabel is what the viewer sees for their own id.
const selfLabel = "you"

// truncateLen is how many identifier characters survive in the fallback label.
const truncateLen = 6

// DisplayName resolves a participant id to a human-readable label for
// presentation. The engine itself never calls this; it exists only for
// rendering transfers and balances to a viewer.
//
// The viewer's own id maps to "you", known ids map through names, and
// anything else falls back to a truncated form of the raw identifier so the
// UI always has something to show.
func DisplayName(id, viewer ParticipantID, names map[ParticipantID]string) string {
	if id == viewer {
		return selfLabel
	}
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	if len(id) > truncateLen {
		return string(id[:truncateLen]) + "…"
	}
	return string(id)
}
