package bulk

import (
	"encoding/json"
	"fmt"

	"github.com/pressflow/pressflow/pkg/db"
)

// StatusChange moves a remote post to a target publish status
type StatusChange struct {
	Status string `json:"status"`
}

// Delete removes a remote post
type Delete struct {
	Force bool `json:"force"`
}

// MetadataUpdate is a partial update applied to a remote post
type MetadataUpdate struct {
	Title      string  `json:"title,omitempty"`
	Excerpt    string  `json:"excerpt,omitempty"`
	Categories []int64 `json:"categories,omitempty"`
	Tags       []int64 `json:"tags,omitempty"`
}

// Payload is the tagged union of per-action payloads; exactly one arm is set
type Payload struct {
	StatusChange   *StatusChange   `json:"status_change,omitempty"`
	Delete         *Delete         `json:"delete,omitempty"`
	MetadataUpdate *MetadataUpdate `json:"metadata_update,omitempty"`
}

// payloadFor builds the payload arm matching the action
func payloadFor(action db.BulkAction, meta *MetadataUpdate) (Payload, error) {
	switch action {
	case db.BulkActionPublish:
		return Payload{StatusChange: &StatusChange{Status: "publish"}}, nil
	case db.BulkActionUnpublish:
		return Payload{StatusChange: &StatusChange{Status: "draft"}}, nil
	case db.BulkActionDelete:
		return Payload{Delete: &Delete{Force: true}}, nil
	case db.BulkActionUpdateMetadata:
		if meta == nil {
			return Payload{}, fmt.Errorf("metadata update requires a metadata payload")
		}
		return Payload{MetadataUpdate: meta}, nil
	default:
		return Payload{}, fmt.Errorf("unknown bulk action %q", action)
	}
}

func (p Payload) encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return string(data), nil
}

func decodePayload(s string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Payload{}, fmt.Errorf("unmarshal payload: %w", err)
	}
	return p, nil
}
