package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Survey.validate(); err != nil {
		return fmt.Errorf("survey: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	ids, err := ParseAdminIDs(c.Admin.IDsRaw)
	if err != nil {
		return fmt.Errorf("admin.ids: %w", err)
	}
	c.Admin.IDs = ids

	if c.Cleanup.ExportRetention <= 0 {
		return fmt.Errorf("cleanup.export_retention must be > 0 (got %v)", c.Cleanup.ExportRetention)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if strings.TrimSpace(s.DataDir) == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if s.SurveysFile == "" || s.ActiveFile == "" || s.ResponsesFile == "" {
		return fmt.Errorf("file names must not be empty")
	}
	if s.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be > 0 (got %d)", s.MaxFileSize)
	}
	if s.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts must be >= 0 (got %d)", s.RetryAttempts)
	}
	return nil
}

func (s *SurveyConfig) validate() error {
	bounds := []struct {
		name     string
		min, max int
	}{
		{"name_length", s.MinNameLength, s.MaxNameLength},
		{"description_length", s.MinDescriptionLength, s.MaxDescriptionLength},
		{"questions", s.MinQuestions, s.MaxQuestions},
	}
	for _, b := range bounds {
		if b.min <= 0 {
			return fmt.Errorf("min_%s must be > 0 (got %d)", b.name, b.min)
		}
		if b.max <= b.min {
			return fmt.Errorf("max_%s must be > min_%s (got %d <= %d)", b.name, b.name, b.max, b.min)
		}
	}
	if s.MaxChoices <= 0 {
		return fmt.Errorf("max_choices must be > 0 (got %d)", s.MaxChoices)
	}
	if s.MaxSurveys <= 0 {
		return fmt.Errorf("max_surveys must be > 0 (got %d)", s.MaxSurveys)
	}
	if s.MaxAnswerLength <= 0 {
		return fmt.Errorf("max_answer_length must be > 0 (got %d)", s.MaxAnswerLength)
	}
	if s.MaxQuestionLength <= 0 {
		return fmt.Errorf("max_question_length must be > 0 (got %d)", s.MaxQuestionLength)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.MaxRequests <= 0 || r.AdminMaxRequests <= 0 {
		return fmt.Errorf("max_requests must be > 0")
	}
	if r.Window <= 0 || r.AdminWindow <= 0 {
		return fmt.Errorf("window must be > 0")
	}
	if r.Retention < r.Window || r.Retention < r.AdminWindow {
		return fmt.Errorf("retention must be >= window (got %v)", r.Retention)
	}
	return nil
}

// ParseAdminIDs parses a comma-separated list of numeric user ids
// (e.g. "123,456"). An empty string returns a nil slice.
func ParseAdminIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", p, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
