package library

import (
	"context"
	"errors"

	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetAuthorBooks returns every book of the author ordered by title. An
// unknown author id degrades to an empty result, not an error.
func (l *libraryImpl) GetAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", idAuthor))
	log.InfoGetAuthorBooks(l.logger, "Start of get author books", traceID, idAuthor)

	if _, err := l.authorRepository.GetAuthorInfo(ctx, idAuthor); err != nil {
		if errors.Is(err, entity.ErrAuthorNotFound) {
			log.InfoGetAuthorBooks(l.logger, "Unknown author, returning no books", traceID, idAuthor)
			return []entity.Book{}, nil
		}

		log.ErrorGetAuthorBooks(l.logger, err, "Failed check author", traceID, idAuthor)
		span.RecordError(err)
		return nil, err
	}

	books, err := l.booksRepository.GetAuthorBooks(ctx, idAuthor)

	if log.ErrorGetAuthorBooks(l.logger, err, "Failed get author books", traceID, idAuthor) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoGetAuthorBooks(l.logger, "Got the author's books", traceID, idAuthor)
	return books, nil
}
