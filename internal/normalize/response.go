package normalize

import (
	"encoding/json"
	"errors"
	"fmt"

	"weles-ai/internal/model"
)

var ErrWorkItemNotFound = errors.New("work item not found")

// Deliverable file name keys, in precedence order. Older service versions
// reply with the camel case key.
const (
	deliverableFileNameKey       = "filename"
	legacyDeliverableFileNameKey = "fileName"
)

// RawWorkItem is one element of the /inference/list response.
type RawWorkItem struct {
	ID     ItemID       `json:"id"`
	Status model.Status `json:"status"`
	Meta   *RawMeta     `json:"meta,omitempty"`
}

// ItemID is a work item id sent either as a JSON string or as a number.
type ItemID string

func (id *ItemID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("work item id %s: %w", b, err)
	}
	*id = ItemID(n.String())
	return nil
}

// Deliverables stay untyped: encoding/json matches keys case-insensitively,
// which would blur the two file name keys.
type RawMeta struct {
	Deliverables []map[string]any `json:"deliverables"`
}

func (m *RawMeta) firstFileName() string {
	if m == nil || len(m.Deliverables) == 0 {
		return ""
	}
	d := m.Deliverables[0]
	for _, key := range []string{deliverableFileNameKey, legacyDeliverableFileNameKey} {
		if v, ok := d[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func Summarize(item RawWorkItem) model.WorkItemSummary {
	return model.WorkItemSummary{
		ID:       string(item.ID),
		Status:   item.Status,
		FileName: item.Meta.firstFileName(),
	}
}

// SummarizeAll keeps the response order and never returns nil.
func SummarizeAll(items []RawWorkItem) []model.WorkItemSummary {
	out := make([]model.WorkItemSummary, 0, len(items))
	for _, item := range items {
		out = append(out, Summarize(item))
	}
	return out
}

// First summarizes the single item expected from a status lookup.
func First(items []RawWorkItem, id string) (model.WorkItemSummary, error) {
	if len(items) == 0 {
		return model.WorkItemSummary{}, fmt.Errorf("%w: %s", ErrWorkItemNotFound, id)
	}
	return Summarize(items[0]), nil
}
