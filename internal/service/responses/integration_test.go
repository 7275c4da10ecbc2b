package responses_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/surveybot/internal/adapter/filestore"
	"github.com/heartmarshall/surveybot/internal/adapter/filestore/responselog"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/service/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog map[string]*domain.Survey

func (c staticCatalog) Get(_ context.Context, id string) (*domain.Survey, error) {
	if s, ok := c[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func TestStatistics_MalformedBlocksAreExcluded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logPath := filepath.Join(dir, "survey_data.txt")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := filestore.New(logger, filestore.Options{MaxFileSize: 1 << 20, RetryAttempts: 1, RetryInterval: time.Millisecond})

	good := domain.ResponseRecord{
		UserID:     7,
		Username:   "ann",
		SurveyID:   "s1",
		SurveyName: "Office",
		Answers:    []domain.Answer{{Question: "Warm?", Text: "Да"}},
		Completed:  true,
	}
	malformed := strings.Join([]string{
		responselog.Delimiter,
		"👤 Пользователь: @mallory",
		"🆔 ID: mallory_s1",
		"❓ Вопрос 1:",
		"└─ Warm?",
		"✍️ Ответ:",
		"└─ Нет",
		"✅ Опрос завершён",
		responselog.Delimiter,
		"garbage without a header",
		responselog.Delimiter,
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(logPath, []byte(responselog.FormatRecord(good)+malformed), 0o644))

	svc := responses.NewService(logger, responselog.New(store, logPath, logger),
		staticCatalog{"s1": {ID: "s1", Name: "Office"}}, store, filepath.Join(dir, "exports"))

	stats, err := svc.Statistics(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalRespondents)
	require.Len(t, stats.Questions, 1)
	assert.Equal(t, []domain.AnswerCount{{Answer: "Да", Count: 1}}, stats.Questions[0].Answers)

	path, err := svc.Export(context.Background(), "s1", responses.FormatCSV)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "user_id,username,completed,Warm?\n7,ann,true,Да\n", string(data))
}
