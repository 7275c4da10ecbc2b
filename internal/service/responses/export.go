package responses

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/heartmarshall/surveybot/internal/domain"
)

// ExportFormat selects the export file layout.
type ExportFormat string

const (
	FormatText ExportFormat = "txt"
	FormatCSV  ExportFormat = "csv"
)

// ExportPrefix starts the name of every export file.
const ExportPrefix = "survey_data_"

func (f ExportFormat) IsValid() bool {
	return f == FormatText || f == FormatCSV
}

// Export writes the survey results to a new file in the export directory and
// returns its path.
func (s *Service) Export(ctx context.Context, surveyID string, format ExportFormat) (string, error) {
	if !format.IsValid() {
		return "", domain.NewValidationError("format", "must be txt or csv")
	}

	records, err := s.surveyRecords(ctx, surveyID)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	stats, err := s.aggregate(ctx, surveyID, records)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	var body string
	switch format {
	case FormatCSV:
		body, err = renderCSV(stats, records)
	default:
		body = renderText(stats, records)
	}
	if err != nil {
		return "", fmt.Errorf("export: render: %w", err)
	}

	name := fmt.Sprintf("%s%s_%s.%s",
		ExportPrefix, domain.SanitizeFilename(surveyID), s.now().Format("20060102_150405"), format)
	path := filepath.Join(s.exportDir, name)
	if err := s.files.Write(ctx, path, body); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	s.log.InfoContext(ctx, "responses exported",
		slog.String("survey_id", surveyID),
		slog.String("path", path),
		slog.Int("respondents", stats.TotalRespondents),
	)

	return path, nil
}

func renderText(stats *domain.SurveyStatistics, records []domain.ResponseRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Опрос: %s (%s)\n", stats.SurveyName, stats.SurveyID)
	fmt.Fprintf(&b, "Респондентов: %d, завершили: %d\n", stats.TotalRespondents, stats.CompletedCount)

	for i, q := range stats.Questions {
		fmt.Fprintf(&b, "\n%d. %s (ответов: %d)\n", i+1, q.Question, q.Total)
		for _, a := range q.Answers {
			fmt.Fprintf(&b, "   %s: %d\n", a.Answer, a.Count)
		}
	}

	for _, rec := range records {
		fmt.Fprintf(&b, "\n@%s (ID %d)", rec.DisplayUsername(), rec.UserID)
		if !rec.Completed {
			b.WriteString(" не завершён")
		}
		b.WriteByte('\n')
		for _, a := range rec.Answers {
			fmt.Fprintf(&b, "   %s: %s\n", a.Question, a.Text)
		}
	}
	return b.String()
}

// renderCSV writes one row per respondent and one column per question.
func renderCSV(stats *domain.SurveyStatistics, records []domain.ResponseRecord) (string, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"user_id", "username", "completed"}
	for _, q := range stats.Questions {
		header = append(header, q.Question)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, rec := range records {
		answers := make(map[string]string, len(rec.Answers))
		for _, a := range rec.Answers {
			answers[a.Question] = a.Text
		}
		row := []string{
			strconv.FormatInt(rec.UserID, 10),
			rec.DisplayUsername(),
			strconv.FormatBool(rec.Completed),
		}
		for _, q := range stats.Questions {
			row = append(row, answers[q.Question])
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
