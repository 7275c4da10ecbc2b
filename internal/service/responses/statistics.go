package responses

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// Statistics aggregates the answers given to a survey. Each user counts once.
// Questions appear in the order they were first answered; answers are ordered
// by count descending, then by text.
//
// A survey that was deleted from the catalog still reports its recorded
// responses under the name stored in the log.
func (s *Service) Statistics(ctx context.Context, surveyID string) (*domain.SurveyStatistics, error) {
	records, err := s.surveyRecords(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	stats, err := s.aggregate(ctx, surveyID, records)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	return stats, nil
}

func (s *Service) aggregate(ctx context.Context, surveyID string, records []domain.ResponseRecord) (*domain.SurveyStatistics, error) {
	name, err := s.surveyName(ctx, surveyID, records)
	if err != nil {
		return nil, err
	}

	stats := &domain.SurveyStatistics{
		SurveyID:         surveyID,
		SurveyName:       name,
		TotalRespondents: len(records),
	}

	type histogram struct {
		total  int
		order  []string
		counts map[string]int
	}
	var questions []string
	byQuestion := make(map[string]*histogram)

	for _, rec := range records {
		if rec.Completed {
			stats.CompletedCount++
		}
		for _, a := range rec.Answers {
			h, ok := byQuestion[a.Question]
			if !ok {
				h = &histogram{counts: make(map[string]int)}
				byQuestion[a.Question] = h
				questions = append(questions, a.Question)
			}
			if _, ok := h.counts[a.Text]; !ok {
				h.order = append(h.order, a.Text)
			}
			h.counts[a.Text]++
			h.total++
		}
	}

	stats.Questions = make([]domain.QuestionStatistics, 0, len(questions))
	for _, q := range questions {
		h := byQuestion[q]
		answers := make([]domain.AnswerCount, 0, len(h.order))
		for _, text := range h.order {
			answers = append(answers, domain.AnswerCount{Answer: text, Count: h.counts[text]})
		}
		slices.SortStableFunc(answers, func(a, b domain.AnswerCount) int {
			if c := cmp.Compare(b.Count, a.Count); c != 0 {
				return c
			}
			return cmp.Compare(a.Answer, b.Answer)
		})
		stats.Questions = append(stats.Questions, domain.QuestionStatistics{
			Question: q,
			Total:    h.total,
			Answers:  answers,
		})
	}

	return stats, nil
}

// surveyName prefers the catalog name and falls back to the name recorded in
// the log. A survey unknown to both is not found.
func (s *Service) surveyName(ctx context.Context, surveyID string, records []domain.ResponseRecord) (string, error) {
	survey, err := s.surveys.Get(ctx, surveyID)
	switch {
	case err == nil:
		return survey.Name, nil
	case !errors.Is(err, domain.ErrNotFound):
		return "", err
	}

	for _, rec := range records {
		if rec.SurveyName != "" {
			return rec.SurveyName, nil
		}
	}
	if len(records) == 0 {
		return "", fmt.Errorf("survey %q: %w", surveyID, domain.ErrNotFound)
	}
	return "", nil
}
