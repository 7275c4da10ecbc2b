package session

import (
	"slices"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/looplab/fsm"
)

// Session is one user's in-progress survey attempt. It holds a snapshot of
// the survey taken at start, so catalog edits do not affect a running
// session. len(Answers) always equals QuestionIndex.
type Session struct {
	UserID        int64
	Username      string
	QuestionIndex int
	Answers       []domain.Answer

	survey  *domain.Survey
	machine *fsm.FSM
}

// State returns the current machine state.
func (s *Session) State() State { return State(s.machine.Current()) }

// SurveyID returns the id of the survey being taken.
func (s *Session) SurveyID() string { return s.survey.ID }

func (s *Session) question() domain.Question { return s.survey.Questions[s.QuestionIndex] }

func (s *Session) last() bool { return s.QuestionIndex == len(s.survey.Questions)-1 }

// askEvent is the event that presents the current question.
func (s *Session) askEvent() string {
	if s.question().Answer.TextOnly() {
		return eventAskText
	}
	return eventAskChoice
}

func (s *Session) prompt() *Prompt {
	q := s.question()
	p := &Prompt{
		SurveyID:   s.survey.ID,
		SurveyName: s.survey.Name,
		Index:      s.QuestionIndex,
		Total:      len(s.survey.Questions),
		Question:   q.Text,
	}
	if s.State() == StateAwaitingFreeText {
		p.AwaitingText = true
		return p
	}
	p.Options = q.Answer.Options()
	return p
}

// record builds the response record with the given final answer appended.
func (s *Session) record(final domain.Answer) domain.ResponseRecord {
	answers := append(slices.Clone(s.Answers), final)
	return domain.ResponseRecord{
		UserID:     s.UserID,
		Username:   s.Username,
		SurveyID:   s.survey.ID,
		SurveyName: s.survey.Name,
		Answers:    answers,
		Completed:  true,
	}
}

// Prompt is a question to show to the user.
type Prompt struct {
	SurveyID   string
	SurveyName string
	// Index is 0-based; Total is the number of questions.
	Index    int
	Total    int
	Question string
	// Options are the buttons to offer. Empty when AwaitingText is set.
	Options      []string
	AwaitingText bool
}

// Step is the outcome of an answer: either the next prompt or completion.
type Step struct {
	Prompt    *Prompt
	Completed bool
}
