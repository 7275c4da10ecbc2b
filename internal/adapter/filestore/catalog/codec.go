package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/surveybot/internal/domain"
)

var errUnrecognized = errors.New("unrecognized catalog format")

type surveyDoc struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	Questions   []questionDoc `json:"questions"`
}

type questionDoc struct {
	Text   string    `json:"text"`
	Answer answerDoc `json:"answer"`
}

type answerDoc struct {
	Type    string   `json:"type"`
	Choices []string `json:"choices,omitempty"`
}

// UnmarshalJSON also accepts a bare string, which is a binary question.
func (q *questionDoc) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*q = questionDoc{Text: text, Answer: answerDoc{Type: string(domain.AnswerBinary)}}
		return nil
	}
	type plain questionDoc
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*q = questionDoc(p)
	return nil
}

func toDoc(s *domain.Survey) surveyDoc {
	doc := surveyDoc{
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt.UTC(),
		Questions:   make([]questionDoc, len(s.Questions)),
	}
	for i, q := range s.Questions {
		ans := answerDoc{Type: q.Answer.Kind.String()}
		if q.Answer.Kind == domain.AnswerChoices {
			ans.Choices = q.Answer.Choices
		}
		doc.Questions[i] = questionDoc{Text: q.Text, Answer: ans}
	}
	return doc
}

func (d surveyDoc) toDomain(id string) *domain.Survey {
	s := &domain.Survey{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		Questions:   make([]domain.Question, len(d.Questions)),
	}
	for i, q := range d.Questions {
		s.Questions[i] = domain.Question{Text: q.Text, Answer: q.Answer.toDomain()}
	}
	return s
}

func (a answerDoc) toDomain() domain.AnswerSchema {
	switch domain.AnswerKind(a.Type) {
	case domain.AnswerFreeText:
		return domain.FreeTextSchema()
	case domain.AnswerChoices:
		if len(a.Choices) > 0 {
			return domain.ChoicesSchema(a.Choices...)
		}
	}
	return domain.BinarySchema()
}

// encodeSurveys renders the surveys as a JSON object keyed by id, in slice
// order.
func encodeSurveys(surveys []*domain.Survey) (string, error) {
	if len(surveys) == 0 {
		return "{}\n", nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, s := range surveys {
		key, err := json.Marshal(s.ID)
		if err != nil {
			return "", fmt.Errorf("encode survey %s: %w", s.ID, err)
		}
		body, err := json.MarshalIndent(toDoc(s), "  ", "  ")
		if err != nil {
			return "", fmt.Errorf("encode survey %s: %w", s.ID, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(body)
		if i < len(surveys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

// decodeSurveys parses either the JSON document or the legacy line format.
// The boolean reports whether the legacy format was found.
func decodeSurveys(text string) ([]*domain.Survey, bool, error) {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return nil, false, nil
	case strings.HasPrefix(trimmed, "{"):
		surveys, err := decodeJSON(trimmed)
		return surveys, false, err
	case strings.Contains(trimmed, "SURVEY_ID:"):
		surveys, err := decodeLegacy(trimmed)
		return surveys, true, err
	default:
		return nil, false, errUnrecognized
	}
}

func decodeJSON(text string) ([]*domain.Survey, error) {
	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode catalog: expected object, got %v", tok)
	}

	var surveys []*domain.Survey
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		id, _ := tok.(string)

		var doc surveyDoc
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode survey %s: %w", id, err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		surveys = append(surveys, doc.toDomain(id))
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return surveys, nil
}

// decodeLegacy parses blocks of
//
//	SURVEY_ID: <id>
//	NAME: <name>
//	DESCRIPTION: <description>
//	- <question>
//
// Legacy questions are binary.
func decodeLegacy(text string) ([]*domain.Survey, error) {
	var (
		surveys []*domain.Survey
		cur     *domain.Survey
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "SURVEY_ID:"):
			cur = &domain.Survey{ID: strings.TrimSpace(strings.TrimPrefix(line, "SURVEY_ID:"))}
			surveys = append(surveys, cur)
		case cur == nil:
			continue
		case strings.HasPrefix(line, "NAME:"):
			cur.Name = strings.TrimSpace(strings.TrimPrefix(line, "NAME:"))
		case strings.HasPrefix(line, "DESCRIPTION:"):
			cur.Description = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
		case strings.HasPrefix(line, "-"):
			if q := strings.TrimSpace(strings.TrimPrefix(line, "-")); q != "" {
				cur.Questions = append(cur.Questions, domain.Question{Text: q, Answer: domain.BinarySchema()})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decode legacy catalog: %w", err)
	}

	out := surveys[:0]
	for _, s := range surveys {
		if s.ID != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func decodeActive(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}

func encodeActive(id string) string {
	if id == "" {
		return ""
	}
	return id + "\n"
}
