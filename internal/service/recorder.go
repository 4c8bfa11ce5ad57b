package service

import (
	"log/slog"

	"github.com/mmcdole/shelf/internal/domain"
)

// recorder writes operation outcomes to the journal. Journal failures are
// logged and never fail the operation itself.
type recorder struct {
	journal domain.Journal
	logger  *slog.Logger
}

func newRecorder(journal domain.Journal, logger *slog.Logger) recorder {
	if journal == nil {
		journal = domain.NopJournal{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return recorder{journal: journal, logger: logger}
}

func (r recorder) record(op domain.Operation, err error) {
	entry := domain.JournalEntry{Op: op, OK: err == nil}
	if err != nil {
		entry.Status = domain.FailureStatus(err)
		entry.Message = domain.FailureMessage(err)
	}
	if jerr := r.journal.Record(entry); jerr != nil {
		r.logger.Warn("failed to record journal entry", "op", op, "error", jerr)
	}
}
