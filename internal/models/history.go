// ABOUTME: HistoryEntry records one completed routing run
// ABOUTME: Append-only audit trail persisted by the storage layer
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResultTab is one rendered output block, keyed by page and tool
type ResultTab struct {
	PageTitle string `json:"page_title"`
	Tool      Tool   `json:"tool"`
	Content   string `json:"content"`
}

// HistoryEntry is one routing run: the goal, its targets and its outputs
type HistoryEntry struct {
	ID        string      `json:"id"`
	Goal      string      `json:"goal"`
	Space     string      `json:"space"`
	Pages     []Page      `json:"pages"`
	Tabs      []ResultTab `json:"tabs"`
	Reasoning string      `json:"reasoning,omitempty"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewHistoryEntry creates a history entry with validation
func NewHistoryEntry(goal, space string, pages []Page, tabs []ResultTab) (*HistoryEntry, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, errors.New("goal cannot be empty")
	}
	if strings.TrimSpace(space) == "" {
		return nil, errors.New("space cannot be empty")
	}
	return &HistoryEntry{
		ID:        generateHistoryID(),
		Goal:      goal,
		Space:     space,
		Pages:     pages,
		Tabs:      tabs,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// generateHistoryID generates a unique history entry identifier
func generateHistoryID() string {
	return fmt.Sprintf("run_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
