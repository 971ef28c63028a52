package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/log"
	"github.com/t-suguru/book-management/internal/usecase/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (l *libraryImpl) AddBook(ctx context.Context, title string, price int, status entity.PublicationStatus, authorIDs []string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoAddBook(l.logger, "Start of add book", traceID, title, authorIDs)

	authorIDs = lo.Uniq(authorIDs)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		// Every referenced author must exist before anything is written.
		if txErr := l.resolveAuthors(ctx, authorIDs); txErr != nil {
			return txErr
		}

		var txErr error
		book, txErr = l.booksRepository.AddBook(ctx, entity.Book{
			Title:     title,
			Price:     price,
			Status:    status,
			AuthorIDs: authorIDs,
		})

		if txErr != nil {
			return txErr
		}

		serialized, txErr := json.Marshal(book)

		if txErr != nil {
			return txErr
		}

		idempotencyKey := repository.OutboxKindBook.String() + "_" + book.ID
		return l.outboxRepository.SendMessage(ctx, idempotencyKey, repository.OutboxKindBook, serialized)
	})

	if log.ErrorAddBook(l.logger, err, "Failed added book", traceID, title, authorIDs) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.String("book_id", book.ID))
	log.InfoAddBook(l.logger, "Added the book", traceID, title, authorIDs, book.ID)
	return book, nil
}

func (l *libraryImpl) UpdateBook(ctx context.Context, id, newTitle string, newPrice int, newStatus entity.PublicationStatus, newAuthorIDs []string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", id))
	log.InfoUpdateBook(l.logger, "Updating the book with id", traceID, id, newTitle, newAuthorIDs)

	newAuthorIDs = lo.Uniq(newAuthorIDs)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		existing, txErr := l.booksRepository.GetBook(ctx, id)

		if txErr != nil {
			return txErr
		}

		// One-way transition: once published, a book stays published.
		if existing.Status == entity.StatusPublished && newStatus == entity.StatusUnpublished {
			return entity.ErrBookAlreadyPublished
		}

		if txErr = l.resolveAuthors(ctx, newAuthorIDs); txErr != nil {
			return txErr
		}

		book, txErr = l.booksRepository.UpdateBook(ctx, entity.Book{
			ID:        id,
			Title:     newTitle,
			Price:     newPrice,
			Status:    newStatus,
			AuthorIDs: newAuthorIDs,
		})
		return txErr
	})

	if log.ErrorUpdateBook(l.logger, err, "Failed update book", traceID, id, newTitle, newAuthorIDs) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoUpdateBook(l.logger, "Updated the book", traceID, id, newTitle, newAuthorIDs)
	return book, nil
}

func (l *libraryImpl) GetBookInfo(ctx context.Context, bookID string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", bookID))

	book, err := l.booksRepository.GetBook(ctx, bookID)

	if log.ErrorGetBookInfo(l.logger, err, "Failed get book info", traceID, bookID) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoGetBookInfo(l.logger, "Got the book", traceID, bookID)
	return book, nil
}

func (l *libraryImpl) resolveAuthors(ctx context.Context, authorIDs []string) error {
	for _, authorID := range authorIDs {
		if _, err := l.authorRepository.GetAuthorInfo(ctx, authorID); err != nil {
			if errors.Is(err, entity.ErrAuthorNotFound) {
				return fmt.Errorf("author with ID %s does not exist: %w", authorID, entity.ErrAuthorNotFound)
			}
			return err
		}
	}

	return nil
}
