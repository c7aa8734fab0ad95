package store

import (
	"context"
	"encoding/json"
	"time"
)

// Artifact is a generated content payload persisted for later inspection.
// The generation layer itself is stateless; artifacts are saved only when
// the caller asks for it.
type Artifact struct {
	ID        string
	Kind      string // "curriculum", "lesson", "quiz", "resources", "projects"
	Params    json.RawMessage
	Payload   json.RawMessage
	CreatedAt time.Time
}

// ArtifactRepo is a key-value store of generated artifacts.
type ArtifactRepo interface {
	// Save stores an artifact. The ID must be set by the caller.
	Save(ctx context.Context, a *Artifact) error

	// Get returns the artifact with the given id, or nil if absent.
	Get(ctx context.Context, id string) (*Artifact, error)

	// ListRecent returns the most recent artifacts, newest first,
	// optionally filtered by kind (empty = all kinds).
	ListRecent(ctx context.Context, kind string, limit int) ([]Artifact, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a recorded LLM API call.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = default of 50)
	Purpose string // filter by purpose (empty = all)
}

// PurposeUsage aggregates token usage per generation purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
