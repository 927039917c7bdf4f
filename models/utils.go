package models

// SameParticipant compares participants by id. Two nil slots are never the same participant
func SameParticipant(a, b *Participant) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID == b.ID
}

// IsByeMatch determines if a match is a walkover, which is when exactly one of its slots is occupied.
// A match flagged IsBye is a walkover too while both slots are still empty: a losers bracket match fed by a bye waits for its only participant
func IsByeMatch(m *Match) bool {
	if m == nil {
		return false
	}
	return m.IsBye || (m.Participant1 == nil) != (m.Participant2 == nil)
}

// Loser returns the participant of a decided match that did not win, nil while undecided or for a bye
func (m *Match) Loser() *Participant {
	if m.Winner == nil || m.IsBye {
		return nil
	}
	if SameParticipant(m.Winner, m.Participant1) {
		return m.Participant2
	}
	return m.Participant1
}
