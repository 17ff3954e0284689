package models

// HistoryStorageKey is where the search history is persisted.
const HistoryStorageKey = "lookup_search_history"

// HistoryTimeLayout formats HistoryEntry.RecordedAt.
const HistoryTimeLayout = "02/01/2006, 15:04:05"

// HistoryEntry is one past lookup. Value may be redacted.
type HistoryEntry struct {
	Type       string `json:"type"`
	Value      string `json:"value"`
	RecordedAt string `json:"timestamp"`
}
