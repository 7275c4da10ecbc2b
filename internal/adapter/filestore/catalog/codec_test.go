package catalog

import (
	"testing"
	"time"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_PreservesOrder(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	in := []*domain.Survey{
		{ID: "zeta", Name: "Последний", Description: "первый в файле", CreatedAt: created, Questions: []domain.Question{
			{Text: "Нравится?", Answer: domain.BinarySchema()},
		}},
		{ID: "alpha", Name: "Второй", Description: "второй в файле", CreatedAt: created, Questions: []domain.Question{
			{Text: "Цвет?", Answer: domain.ChoicesSchema("Красный", "Синий")},
			{Text: "Почему?", Answer: domain.FreeTextSchema()},
		}},
		{ID: "mid", Name: "Третий", Description: "третий в файле", CreatedAt: created, Questions: []domain.Question{
			{Text: "Ок?", Answer: domain.BinarySchema()},
		}},
	}

	text, err := encodeSurveys(in)
	require.NoError(t, err)

	out, legacy, err := decodeSurveys(text)
	require.NoError(t, err)
	assert.False(t, legacy)
	assert.Equal(t, in, out)
}

func TestDecodeJSON_KeyOrderFromFile(t *testing.T) {
	t.Parallel()

	doc := `{
  "b": {"name": "B", "description": "bbbbbbbbbb", "questions": ["Вопрос?"]},
  "a": {"name": "A", "description": "aaaaaaaaaa", "questions": [{"text": "Q", "answer": {"type": "free_text"}}]}
}`
	out, _, err := decodeSurveys(doc)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, domain.BinarySchema(), out[0].Questions[0].Answer)
	assert.Equal(t, domain.FreeTextSchema(), out[1].Questions[0].Answer)
}

func TestDecodeJSON_EmptyChoicesFallsBackToBinary(t *testing.T) {
	t.Parallel()

	out, _, err := decodeSurveys(`{"x": {"name": "X", "questions": [{"text": "Q", "answer": {"type": "choices"}}]}}`)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.AnswerBinary, out[0].Questions[0].Answer.Kind)
}

func TestDecodeLegacy(t *testing.T) {
	t.Parallel()

	text := "SURVEY_ID: s1\nNAME: Питание\nDESCRIPTION: Опрос о еде в столовой\n- Вкусно?\n- Дорого?\n\n" +
		"SURVEY_ID: s2\nNAME: Транспорт\nDESCRIPTION: Как вы добираетесь\n- На автобусе?\n"

	out, legacy, err := decodeSurveys(text)
	require.NoError(t, err)
	assert.True(t, legacy)
	require.Len(t, out, 2)

	assert.Equal(t, "s1", out[0].ID)
	assert.Equal(t, "Питание", out[0].Name)
	assert.Equal(t, "Опрос о еде в столовой", out[0].Description)
	require.Len(t, out[0].Questions, 2)
	assert.Equal(t, "Дорого?", out[0].Questions[1].Text)
	assert.Equal(t, domain.BinarySchema(), out[0].Questions[1].Answer)
	assert.Equal(t, "s2", out[1].ID)
}

func TestDecodeSurveys_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := decodeSurveys("garbage that is neither format")
	assert.ErrorIs(t, err, errUnrecognized)

	_, _, err = decodeSurveys(`{"a": {"name": `)
	assert.Error(t, err)

	out, _, err := decodeSurveys("  \n")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestActivePointer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", decodeActive("  abc \nextra\n"))
	assert.Equal(t, "", decodeActive(""))
	assert.Equal(t, "abc\n", encodeActive("abc"))
	assert.Equal(t, "", encodeActive(""))
}
