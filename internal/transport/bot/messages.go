package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/service/session"
)

const (
	msgCompleted       = "✅ Спасибо! Опрос завершён."
	msgCancelled       = "Опрос отменён. Ответы не сохранены."
	msgNothingToCancel = "Нет опроса в процессе."
	msgNoActiveSurvey  = "Сейчас нет активного опроса."
	msgNoSurveys       = "Опросов пока нет."

	msgRateLimited  = "⏳ Слишком много запросов. Попробуйте позже."
	msgDuplicate    = "Вы уже прошли этот опрос."
	msgInactive     = "Этот опрос сейчас недоступен."
	msgForbidden    = "Команда доступна только администраторам."
	msgNoSession    = "Нет опроса в процессе. Отправьте /start, чтобы начать."
	msgNotFound     = "Опрос не найден."
	msgInvalid      = "⚠️ Ответ не принят. Выберите вариант из списка или введите текст ответа."
	msgUnauthorized = "Не удалось определить пользователя."
	msgStorage      = "⚠️ Не удалось сохранить ответы. Отправьте ответ ещё раз чуть позже."
	msgInternal     = "Произошла ошибка. Попробуйте позже."
)

// userMessage translates an error into text for the user. Order matters:
// specific errors wrap more general ones.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, domain.ErrDuplicateAttempt):
		return msgDuplicate
	case errors.Is(err, domain.ErrSurveyInactive):
		return msgInactive
	case errors.Is(err, domain.ErrForbidden):
		return msgForbidden
	case errors.Is(err, session.ErrNoSession):
		return msgNoSession
	case errors.Is(err, domain.ErrNotFound):
		return msgNotFound
	case errors.Is(err, domain.ErrValidation):
		return msgInvalid
	case errors.Is(err, domain.ErrUnauthorized):
		return msgUnauthorized
	case errors.Is(err, domain.ErrStorageTransient), errors.Is(err, domain.ErrStorageLimit):
		return msgStorage
	default:
		return msgInternal
	}
}

func introText(p *session.Prompt) string {
	return fmt.Sprintf("📝 %s\nВопросов: %d", p.SurveyName, p.Total)
}

func promptText(p *session.Prompt) string {
	text := fmt.Sprintf("❓ Вопрос %d из %d:\n%s", p.Index+1, p.Total, p.Question)
	if p.AwaitingText {
		text += "\n\n✍️ Введите ответ:"
	}
	return text
}

func surveyListText(surveys []*domain.Survey, active *domain.Survey) string {
	if len(surveys) == 0 {
		return msgNoSurveys
	}
	var b strings.Builder
	b.WriteString("📋 Опросы:")
	for i, s := range surveys {
		mark := ""
		if active != nil && s.ID == active.ID {
			mark = " ✅"
		}
		fmt.Fprintf(&b, "\n%d. %s (%d вопр.)%s", i+1, s.Name, len(s.Questions), mark)
	}
	return b.String()
}

func statisticsText(s *domain.SurveyStatistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s\nРеспондентов: %d, завершили: %d", s.SurveyName, s.TotalRespondents, s.CompletedCount)
	for i, q := range s.Questions {
		fmt.Fprintf(&b, "\n\n%d. %s", i+1, q.Question)
		for _, a := range q.Answers {
			fmt.Fprintf(&b, "\n   %s: %d", a.Answer, a.Count)
		}
	}
	return b.String()
}
