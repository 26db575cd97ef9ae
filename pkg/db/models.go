package db

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JobStatus is the persisted job lifecycle state
type JobStatus string

// job lifecycle states, persisted case-sensitive
const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusGenerating JobStatus = "GENERATING"
	JobStatusGenerated  JobStatus = "GENERATED"
	JobStatusPublishing JobStatus = "PUBLISHING"
	JobStatusPublished  JobStatus = "PUBLISHED"
	JobStatusFailed     JobStatus = "FAILED"
)

// SourceKind identifies where a job's input comes from
type SourceKind string

// job source kinds
const (
	SourceFeed  SourceKind = "feed"
	SourceTopic SourceKind = "topic"
)

// TriggerKind identifies how a schedule fires
type TriggerKind string

// schedule trigger kinds
const (
	TriggerOnce         TriggerKind = "ONCE"
	TriggerEvery5Min    TriggerKind = "EVERY_5_MIN"
	TriggerEvery10Min   TriggerKind = "EVERY_10_MIN"
	TriggerEvery30Min   TriggerKind = "EVERY_30_MIN"
	TriggerHourly       TriggerKind = "HOURLY"
	TriggerEvery2Hours  TriggerKind = "EVERY_2_HOURS"
	TriggerEvery6Hours  TriggerKind = "EVERY_6_HOURS"
	TriggerEvery12Hours TriggerKind = "EVERY_12_HOURS"
	TriggerDaily        TriggerKind = "DAILY"
	TriggerWeekly       TriggerKind = "WEEKLY"
	TriggerCustom       TriggerKind = "CUSTOM"
)

// BulkAction is the action a bulk operation applies to each target
type BulkAction string

// bulk operation actions
const (
	BulkActionPublish        BulkAction = "PUBLISH"
	BulkActionUnpublish      BulkAction = "UNPUBLISH"
	BulkActionDelete         BulkAction = "DELETE"
	BulkActionUpdateMetadata BulkAction = "UPDATE_METADATA"
)

// BulkStatus is the bulk operation lifecycle state
type BulkStatus string

// bulk operation states
const (
	BulkStatusPending    BulkStatus = "pending"
	BulkStatusProcessing BulkStatus = "processing"
	BulkStatusCompleted  BulkStatus = "completed"
	BulkStatusFailed     BulkStatus = "failed"
)

// StringList is a JSON-encoded list of strings stored in a TEXT column
type StringList []string

// Scan implements sql.Scanner
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// Int64List is a JSON-encoded list of int64 stored in a TEXT column
type Int64List []int64

// Scan implements sql.Scanner
func (l *Int64List) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("unsupported type %T for Int64List", src)
	}
}

// Value implements driver.Valuer
func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal int64 list: %w", err)
	}
	return string(data), nil
}

// ItemError records one failed target of a bulk operation
type ItemError struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// ItemErrorList is a JSON-encoded list of per-item errors
type ItemErrorList []ItemError

// Scan implements sql.Scanner
func (l *ItemErrorList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("unsupported type %T for ItemErrorList", src)
	}
}

// Value implements driver.Valuer
func (l ItemErrorList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal item error list: %w", err)
	}
	return string(data), nil
}

// Site represents a managed WordPress site
type Site struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	BaseURL     string    `db:"base_url"`
	Username    string    `db:"username"`
	AppPassword string    `db:"app_password"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Feed represents a syndication source attached to a site
type Feed struct {
	ID        int64     `db:"id"`
	SiteID    int64     `db:"site_id"`
	URL       string    `db:"url"`
	Title     string    `db:"title"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Schedule represents a recurring or one-shot automation policy
type Schedule struct {
	ID             int64         `db:"id"`
	SiteID         int64         `db:"site_id"`
	FeedID         sql.NullInt64 `db:"feed_id"`
	Name           string        `db:"name"`
	TriggerKind    TriggerKind   `db:"trigger_kind"`
	CronExpr       string        `db:"cron_expr"`
	RunAt          sql.NullTime  `db:"run_at"`
	Timezone       string        `db:"timezone"`
	AutoPublish    bool          `db:"auto_publish"`
	PublishStatus  string        `db:"publish_status"`
	MaxArticles    int           `db:"max_articles"`
	Enabled        bool          `db:"enabled"`
	LastRunAt      sql.NullTime  `db:"last_run_at"`
	NextRunAt      sql.NullTime  `db:"next_run_at"`
	TotalRuns      int           `db:"total_runs"`
	SuccessfulRuns int           `db:"successful_runs"`
	FailedRuns     int           `db:"failed_runs"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

// Job represents one unit of automation work
type Job struct {
	ID               int64         `db:"id"`
	SiteID           int64         `db:"site_id"`
	SourceKind       SourceKind    `db:"source_kind"`
	FeedID           sql.NullInt64 `db:"feed_id"`
	SourceURL        string        `db:"source_url"`
	SourceTitle      string        `db:"source_title"`
	Topic            string        `db:"topic"`
	Status           JobStatus     `db:"status"`
	AutoPublish      bool          `db:"auto_publish"`
	PublishStatus    string        `db:"publish_status"`
	GenTitle         string        `db:"gen_title"`
	GenContent       string        `db:"gen_content"`
	GenExcerpt       string        `db:"gen_excerpt"`
	Categories       StringList    `db:"categories"`
	Tags             StringList    `db:"tags"`
	SEODescription   string        `db:"seo_description"`
	SEOKeywords      StringList    `db:"seo_keywords"`
	Degraded         bool          `db:"degraded"`
	FeaturedImageURL string        `db:"featured_image_url"`
	WPPostID         sql.NullInt64 `db:"wp_post_id"`
	PublishedAt      sql.NullTime  `db:"published_at"`
	Error            string        `db:"error"`
	TokensUsed       int           `db:"tokens_used"`
	Cost             float64       `db:"cost"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

// BulkOperation represents a batch action against many remote resources
type BulkOperation struct {
	ID             string        `db:"id"`
	SiteID         int64         `db:"site_id"`
	ResourceKind   string        `db:"resource_kind"`
	Action         BulkAction    `db:"action"`
	TargetIDs      Int64List     `db:"target_ids"`
	Payload        string        `db:"payload"`
	Status         BulkStatus    `db:"status"`
	TotalItems     int           `db:"total_items"`
	ProcessedItems int           `db:"processed_items"`
	SuccessCount   int           `db:"success_count"`
	FailureCount   int           `db:"failure_count"`
	Errors         ItemErrorList `db:"errors"`
	Error          string        `db:"error"`
	StartedAt      sql.NullTime  `db:"started_at"`
	CompletedAt    sql.NullTime  `db:"completed_at"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}
