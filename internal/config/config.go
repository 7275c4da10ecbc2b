package config

import (
	"path/filepath"
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Survey    SurveyConfig    `yaml:"survey"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Admin     AdminConfig     `yaml:"admin"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
}

// StorageConfig holds file store settings.
type StorageConfig struct {
	DataDir       string        `yaml:"data_dir"       env:"STORAGE_DATA_DIR"       env-default:"./data"`
	SurveysFile   string        `yaml:"surveys_file"   env:"STORAGE_SURVEYS_FILE"   env-default:"surveys.json"`
	ActiveFile    string        `yaml:"active_file"    env:"STORAGE_ACTIVE_FILE"    env-default:"active_survey.txt"`
	ResponsesFile string        `yaml:"responses_file" env:"STORAGE_RESPONSES_FILE" env-default:"survey_data.txt"`
	AuditFile     string        `yaml:"audit_file"     env:"STORAGE_AUDIT_FILE"     env-default:"audit.log"`
	ExportDir     string        `yaml:"export_dir"     env:"STORAGE_EXPORT_DIR"     env-default:"./exports"`
	MaxFileSize   int64         `yaml:"max_file_size"  env:"STORAGE_MAX_FILE_SIZE"  env-default:"10485760"`
	MinFreeSpace  uint64        `yaml:"min_free_space" env:"STORAGE_MIN_FREE_SPACE" env-default:"104857600"`
	RetryAttempts int           `yaml:"retry_attempts" env:"STORAGE_RETRY_ATTEMPTS" env-default:"3"`
	RetryInterval time.Duration `yaml:"retry_interval" env:"STORAGE_RETRY_INTERVAL" env-default:"100ms"`
}

// SurveysPath returns the catalog document path.
func (s StorageConfig) SurveysPath() string { return filepath.Join(s.DataDir, s.SurveysFile) }

// ActivePath returns the active pointer path.
func (s StorageConfig) ActivePath() string { return filepath.Join(s.DataDir, s.ActiveFile) }

// ResponsesPath returns the response log path.
func (s StorageConfig) ResponsesPath() string { return filepath.Join(s.DataDir, s.ResponsesFile) }

// AuditPath returns the audit log path.
func (s StorageConfig) AuditPath() string { return filepath.Join(s.DataDir, s.AuditFile) }

// SurveyConfig holds survey definition limits.
type SurveyConfig struct {
	MinNameLength        int `yaml:"min_name_length"        env:"SURVEY_MIN_NAME_LENGTH"        env-default:"3"`
	MaxNameLength        int `yaml:"max_name_length"        env:"SURVEY_MAX_NAME_LENGTH"        env-default:"100"`
	MinDescriptionLength int `yaml:"min_description_length" env:"SURVEY_MIN_DESCRIPTION_LENGTH" env-default:"10"`
	MaxDescriptionLength int `yaml:"max_description_length" env:"SURVEY_MAX_DESCRIPTION_LENGTH" env-default:"500"`
	MinQuestions         int `yaml:"min_questions"          env:"SURVEY_MIN_QUESTIONS"          env-default:"1"`
	MaxQuestions         int `yaml:"max_questions"          env:"SURVEY_MAX_QUESTIONS"          env-default:"20"`
	MaxQuestionLength    int `yaml:"max_question_length"    env:"SURVEY_MAX_QUESTION_LENGTH"    env-default:"500"`
	MaxChoices           int `yaml:"max_choices"            env:"SURVEY_MAX_CHOICES"            env-default:"10"`
	MaxSurveys           int `yaml:"max_surveys"            env:"SURVEY_MAX_SURVEYS"            env-default:"10"`
	MaxAnswerLength      int `yaml:"max_answer_length"      env:"SURVEY_MAX_ANSWER_LENGTH"      env-default:"1000"`
}

// RateLimitConfig holds per-user action throttling settings.
type RateLimitConfig struct {
	MaxRequests      int           `yaml:"max_requests"       env:"RATE_LIMIT_MAX_REQUESTS"       env-default:"5"`
	Window           time.Duration `yaml:"window"             env:"RATE_LIMIT_WINDOW"             env-default:"60s"`
	AdminMaxRequests int           `yaml:"admin_max_requests" env:"RATE_LIMIT_ADMIN_MAX_REQUESTS" env-default:"20"`
	AdminWindow      time.Duration `yaml:"admin_window"       env:"RATE_LIMIT_ADMIN_WINDOW"       env-default:"60s"`
	Retention        time.Duration `yaml:"retention"          env:"RATE_LIMIT_RETENTION"          env-default:"1h"`
	SweepInterval    time.Duration `yaml:"sweep_interval"     env:"RATE_LIMIT_SWEEP_INTERVAL"     env-default:"5m"`
}

// AdminConfig holds operator identities.
type AdminConfig struct {
	IDsRaw string `yaml:"ids" env:"ADMIN_IDS"`

	// IDs is parsed from IDsRaw during validation.
	IDs []int64 `yaml:"-" env:"-"`
}

// IsAdmin reports whether userID is a configured operator.
func (a AdminConfig) IsAdmin(userID int64) bool {
	return slices.Contains(a.IDs, userID)
}

// CleanupConfig holds export retention settings.
type CleanupConfig struct {
	ExportRetention time.Duration `yaml:"export_retention" env:"CLEANUP_EXPORT_RETENTION" env-default:"24h"`
	Interval        time.Duration `yaml:"interval"         env:"CLEANUP_INTERVAL"         env-default:"1h"`
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
