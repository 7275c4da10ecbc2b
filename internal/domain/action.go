package domain

// Action is a single inbound user action delivered by the gateway.
// Payload carries the survey id for START and STATS, the chosen label for
// CHOOSE and the raw text for TEXT.
type Action struct {
	UserID   int64
	Username string
	Kind     ActionKind
	Payload  string
}
