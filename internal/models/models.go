package models

// Team is one competitive modality as defined by the upstream API.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Attendance is a single player's presence interval within a training
// session. Timestamps are epoch milliseconds, matching the upstream unit.
type Attendance struct {
	PlayerID   string `json:"playerId"`
	EntranceMs int64  `json:"entranceTimestamp"`
	ExitMs     int64  `json:"exitTimestamp"`
}

// Session is one training event fetched from the upstream API. Only
// sessions with Status == SessionEnded count toward attendance hours.
type Session struct {
	Status      string       `json:"status"`
	StartMs     int64        `json:"startTimestamp"`
	ModalityID  string       `json:"modalityId"`
	Attendances []Attendance `json:"attendedPlayers"`
}

// SessionEnded is the only session status eligible for aggregation.
const SessionEnded = "ENDED"

// Identity maps an upstream player ID to a resolved display handle.
// The handle is derived from the user's institutional email local part.
type Identity struct {
	PlayerID string `json:"playerId"`
	Handle   string `json:"handle"`
}
