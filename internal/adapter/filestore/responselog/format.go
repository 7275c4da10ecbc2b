package responselog

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Delimiter separates blocks in the response log.
const Delimiter = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Block markers. Parsing strips the leading emoji, so the keywords are what
// identifies a line.
const (
	markUser      = "👤 Пользователь: @"
	markID        = "🆔 ID: "
	markSurvey    = "📝 Опрос: "
	markQuestion  = "❓ Вопрос "
	markAnswer    = "✍️ Ответ:"
	markCompleted = "✅ Опрос завершён"
	bodyPrefix    = "└─ "
	continuation  = "   "
)

// FormatRecord renders a record as one delimited block, ending in a newline.
// Continuation lines of multi-line text are indented so they can never be
// read back as markers or delimiters.
func FormatRecord(r domain.ResponseRecord) string {
	var b strings.Builder
	b.WriteString(Delimiter + "\n")
	b.WriteString(markUser + singleLine(r.DisplayUsername()) + "\n")
	b.WriteString(markID + strconv.FormatInt(r.UserID, 10) + "_" + r.SurveyID + "\n")
	b.WriteString(markSurvey + singleLine(r.SurveyName) + "\n")
	for i, a := range r.Answers {
		b.WriteString(markQuestion + strconv.Itoa(i+1) + ":\n")
		b.WriteString(bodyPrefix + indent(a.Question) + "\n")
		b.WriteString(markAnswer + "\n")
		b.WriteString(bodyPrefix + indent(a.Text) + "\n")
	}
	if r.Completed {
		b.WriteString(markCompleted + "\n")
	}
	b.WriteString(Delimiter + "\n")
	return b.String()
}

func indent(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "\n"+continuation)
}

func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
