package domain

// NoUsername stands in for users without a public handle.
const NoUsername = "NoUsername"

// Answer is one question/answer pair of a response record.
type Answer struct {
	Question string
	Text     string
}

// ResponseRecord is one finalized survey attempt in the response log.
// Records are append-only and never mutated once written.
type ResponseRecord struct {
	UserID     int64
	Username   string
	SurveyID   string
	SurveyName string
	Answers    []Answer
	Completed  bool
}

// DisplayUsername returns the username or the NoUsername sentinel.
func (r ResponseRecord) DisplayUsername() string {
	if r.Username == "" {
		return NoUsername
	}
	return r.Username
}

// AnswerCount is one bar of a per-question histogram.
type AnswerCount struct {
	Answer string
	Count  int
}

// QuestionStatistics aggregates answers given to one question.
type QuestionStatistics struct {
	Question string
	Total    int
	Answers  []AnswerCount
}

// SurveyStatistics is the operator view of a survey's results.
type SurveyStatistics struct {
	SurveyID         string
	SurveyName       string
	TotalRespondents int
	CompletedCount   int
	Questions        []QuestionStatistics
}
