package service

import (
	"context"
	"log/slog"

	"github.com/mmcdole/shelf/internal/domain"
)

// CatalogService orchestrates book operations. It never caches: every call
// goes to the server and the caller owns the snapshot.
type CatalogService struct {
	repo   domain.BookRepository
	logger *slog.Logger
	recorder
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.BookRepository, journal domain.Journal, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:     repo,
		logger:   logger,
		recorder: newRecorder(journal, logger),
	}
}

// AddBook creates a book
func (s *CatalogService) AddBook(ctx context.Context, draft domain.BookDraft) error {
	err := s.repo.AddBook(ctx, draft)
	s.record(domain.OpAddBook, err)
	if err != nil {
		s.logger.Info("add book failed", "title", draft.Title, "error", err)
		return err
	}
	s.logger.Info("added book", "title", draft.Title, "year", draft.Year)
	return nil
}

// RemoveBook deletes a book by ID
func (s *CatalogService) RemoveBook(ctx context.Context, id int64) error {
	err := s.repo.RemoveBook(ctx, id)
	s.record(domain.OpRemoveBook, err)
	if err != nil {
		s.logger.Info("remove book failed", "bookID", id, "error", err)
		return err
	}
	s.logger.Info("removed book", "bookID", id)
	return nil
}

// ListBooks fetches the current book list
func (s *CatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	s.record(domain.OpListBooks, err)
	if err != nil {
		s.logger.Info("list books failed", "error", err)
		return nil, err
	}
	s.logger.Debug("listed books", "count", len(books))
	return books, nil
}
