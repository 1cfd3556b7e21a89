package state

// EntryEdits maps wallet id to the raw entry-amount text the user is typing.
// Values are never validated here. EntryEdits is copy-on-write: every update
// returns a new value, so a map handed to a list never changes under it.
type EntryEdits struct {
	m map[int64]string
}

// NewEntryEdits creates an empty edit set
func NewEntryEdits() EntryEdits {
	return EntryEdits{}
}

// Lookup returns the pending text for a wallet. Presence, not the text,
// decides whether an edit exists: an empty string is still an edit.
func (e EntryEdits) Lookup(walletID int64) (string, bool) {
	text, ok := e.m[walletID]
	return text, ok
}

// Len returns the number of pending edits
func (e EntryEdits) Len() int {
	return len(e.m)
}

// Apply records text as the pending edit for a wallet
func (e EntryEdits) Apply(walletID int64, text string) EntryEdits {
	next := e.clone(len(e.m) + 1)
	next[walletID] = text
	return EntryEdits{m: next}
}

// Discard drops the pending edit for a wallet
func (e EntryEdits) Discard(walletID int64) EntryEdits {
	if _, ok := e.m[walletID]; !ok {
		return e
	}
	next := e.clone(len(e.m))
	delete(next, walletID)
	return EntryEdits{m: next}
}

// Prune keeps only edits for the given wallet ids
func (e EntryEdits) Prune(walletIDs []int64) EntryEdits {
	if len(e.m) == 0 {
		return e
	}

	next := make(map[int64]string, len(e.m))
	for _, id := range walletIDs {
		if text, ok := e.m[id]; ok {
			next[id] = text
		}
	}
	return EntryEdits{m: next}
}

func (e EntryEdits) clone(capacity int) map[int64]string {
	next := make(map[int64]string, capacity)
	for id, text := range e.m {
		next[id] = text
	}
	return next
}
