package library

import (
	"context"
	"encoding/json"
	"time"

	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/log"
	"github.com/t-suguru/book-management/internal/usecase/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (l *libraryImpl) RegisterAuthor(ctx context.Context, name string, birthdate time.Time) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoRegisterAuthor(l.logger, "Start of register author", traceID, name)

	var author entity.Author
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		author, txErr = l.authorRepository.RegisterAuthor(ctx, entity.Author{
			Name:      name,
			Birthdate: birthdate,
		})

		if txErr != nil {
			return txErr
		}

		serialized, txErr := json.Marshal(author)

		if txErr != nil {
			return txErr
		}

		idempotencyKey := repository.OutboxKindAuthor.String() + "_" + author.ID
		return l.outboxRepository.SendMessage(ctx, idempotencyKey, repository.OutboxKindAuthor, serialized)
	})

	if log.ErrorRegisterAuthor(l.logger, err, "Failed register author", traceID, name) {
		span.SetAttributes(attribute.String("author_name", name))
		span.RecordError(err)
		return entity.Author{}, err
	}

	span.SetAttributes(attribute.String("author_id", author.ID))
	log.InfoRegisterAuthor(l.logger, "Registered the author", traceID, name, author.ID)
	return author, nil
}

// ChangeAuthorInfo checks existence first: the repository update assumes the
// row is there and does not signal absence on its own.
func (l *libraryImpl) ChangeAuthorInfo(ctx context.Context, idAuthor, newName string, newBirthdate time.Time) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", idAuthor))
	log.InfoChangeAuthorInfo(l.logger, "Start of change author info", traceID, idAuthor, newName)

	var author entity.Author
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := l.authorRepository.GetAuthorInfo(ctx, idAuthor); txErr != nil {
			return txErr
		}

		var txErr error
		author, txErr = l.authorRepository.ChangeAuthorInfo(ctx, entity.Author{
			ID:        idAuthor,
			Name:      newName,
			Birthdate: newBirthdate,
		})
		return txErr
	})

	if log.ErrorChangeAuthorInfo(l.logger, err, "Failed changing author", traceID, idAuthor, newName) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoChangeAuthorInfo(l.logger, "Changed the author with id", traceID, idAuthor, newName)
	return author, nil
}

func (l *libraryImpl) GetAuthorInfo(ctx context.Context, idAuthor string) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", idAuthor))
	log.InfoGetAuthorInfo(l.logger, "start of getting author info", traceID, idAuthor)

	author, err := l.authorRepository.GetAuthorInfo(ctx, idAuthor)

	if log.ErrorGetAuthorInfo(l.logger, err, "Failed get author info", traceID, idAuthor) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoGetAuthorInfo(l.logger, "Got the author info", traceID, idAuthor)
	return author, nil
}
