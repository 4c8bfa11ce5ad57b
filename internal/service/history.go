package service

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/shelf/internal/domain"
)

// HistoryService reads the activity journal
type HistoryService struct {
	journal domain.Journal
}

// NewHistoryService creates a new history service
func NewHistoryService(journal domain.Journal) *HistoryService {
	if journal == nil {
		journal = domain.NopJournal{}
	}
	return &HistoryService{journal: journal}
}

// Recent returns up to limit entries, newest first
func (s *HistoryService) Recent(limit int) ([]domain.JournalEntry, error) {
	return s.journal.Recent(limit)
}

// Find ranks all entries against query and returns up to limit matches,
// best match first. Ties keep newest-first order.
func (s *HistoryService) Find(query string, limit int) ([]domain.JournalEntry, error) {
	entries, err := s.journal.Recent(0)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return truncate(entries, limit), nil
	}

	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.String()
	}

	matches := fuzzy.RankFindFold(query, targets)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].OriginalIndex < matches[j].OriginalIndex
	})

	results := make([]domain.JournalEntry, len(matches))
	for i, m := range matches {
		results[i] = entries[m.OriginalIndex]
	}
	return truncate(results, limit), nil
}

func truncate(entries []domain.JournalEntry, limit int) []domain.JournalEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
