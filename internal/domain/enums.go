package domain

// AnswerKind tags the variant of an AnswerSchema.
type AnswerKind string

const (
	AnswerBinary   AnswerKind = "binary"
	AnswerChoices  AnswerKind = "choices"
	AnswerFreeText AnswerKind = "free_text"
)

func (k AnswerKind) String() string { return string(k) }

func (k AnswerKind) IsValid() bool {
	switch k {
	case AnswerBinary, AnswerChoices, AnswerFreeText:
		return true
	}
	return false
}

// ActionKind enumerates what a user can do through the messaging gateway.
type ActionKind string

const (
	ActionStart   ActionKind = "START"
	ActionChoose  ActionKind = "CHOOSE"
	ActionText    ActionKind = "TEXT"
	ActionCancel  ActionKind = "CANCEL"
	ActionSurveys ActionKind = "SURVEYS"
	ActionStats   ActionKind = "STATS"
)

func (k ActionKind) String() string { return string(k) }

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionStart, ActionChoose, ActionText, ActionCancel, ActionSurveys, ActionStats:
		return true
	}
	return false
}

// Administrative reports whether the action is reserved for operators.
func (k ActionKind) Administrative() bool {
	return k == ActionStats
}

// EntityType identifies the kind of catalog entity (used in audit logs).
type EntityType string

const (
	EntityTypeSurvey   EntityType = "SURVEY"
	EntityTypeQuestion EntityType = "QUESTION"
	EntityTypeActive   EntityType = "ACTIVE_SURVEY"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeSurvey, EntityTypeQuestion, EntityTypeActive:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
