package library

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/usecase/library/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var errInternalAuthor = errors.New("internal error")

type authorTestEnv struct {
	ctx        context.Context
	authorRepo *mocks.MockAuthorRepository
	outboxRepo *mocks.MockOutboxRepository
	transactor *mocks.MockTransactor
	service    *libraryImpl
}

func initAuthorTest(t *testing.T) authorTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	authorRepo := mocks.NewMockAuthorRepository(ctrl)
	outboxRepo := mocks.NewMockOutboxRepository(ctrl)
	transactor := mocks.NewMockTransactor(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	return authorTestEnv{
		ctx:        context.Background(),
		authorRepo: authorRepo,
		outboxRepo: outboxRepo,
		transactor: transactor,
		service:    New(logger, authorRepo, nil, outboxRepo, transactor),
	}
}

func passThroughTx(env *authorTestEnv) {
	env.transactor.EXPECT().WithTx(env.ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, function func(ctx context.Context) error) error {
			return function(ctx)
		})
}

func TestRegisterAuthor(t *testing.T) {
	t.Parallel()

	const name = "testAuthor"
	birthdate := time.Date(1867, 2, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		errRequire error
	}{
		{name: "valid registration",
			errRequire: nil},
		{name: "register with internal error",
			errRequire: errInternalAuthor},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initAuthorTest(t)
			passThroughTx(&env)

			tErr := test.errRequire
			env.authorRepo.EXPECT().RegisterAuthor(env.ctx, gomock.Any()).DoAndReturn(
				func(ctx context.Context, input entity.Author) (entity.Author, error) {
					if tErr != nil {
						return entity.Author{}, tErr
					}
					input.ID = uuid.NewString()
					return input, nil
				})

			if tErr == nil {
				env.outboxRepo.EXPECT().SendMessage(env.ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			author, err := env.service.RegisterAuthor(env.ctx, name, birthdate)
			require.ErrorIs(t, err, tErr)
			if err != nil {
				require.Empty(t, author)
				return
			}

			err = validation.ValidateStructWithContext(
				env.ctx,
				&author,
				validation.Field(&author.ID, is.UUID),
			)
			require.NoError(t, err)
			require.Equal(t, name, author.Name)
			require.Equal(t, birthdate, author.Birthdate)
		})
	}
}

func TestChangeAuthorInfo(t *testing.T) {
	t.Parallel()

	const (
		id   = "7d9f0339-32d8-4429-9ac6-3e0426c7ba07"
		name = "Test testovich"
	)
	birthdate := time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		existErr   error
		updateErr  error
		errRequire error
	}{
		{name: "valid change author"},
		{name: "change of unknown author",
			existErr:   entity.ErrAuthorNotFound,
			errRequire: entity.ErrAuthorNotFound},
		{name: "change with internal error",
			updateErr:  errInternalAuthor,
			errRequire: errInternalAuthor},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initAuthorTest(t)
			passThroughTx(&env)

			env.authorRepo.EXPECT().GetAuthorInfo(env.ctx, id).Return(entity.Author{ID: id}, test.existErr)

			if test.existErr == nil {
				env.authorRepo.EXPECT().ChangeAuthorInfo(env.ctx, gomock.Any()).DoAndReturn(
					func(ctx context.Context, input entity.Author) (entity.Author, error) {
						if test.updateErr != nil {
							return entity.Author{}, test.updateErr
						}
						return input, nil
					})
			}

			author, err := env.service.ChangeAuthorInfo(env.ctx, id, name, birthdate)
			require.ErrorIs(t, err, test.errRequire)
			if err != nil {
				require.Empty(t, author)
				return
			}

			require.Equal(t, id, author.ID)
			require.Equal(t, name, author.Name)
			require.Equal(t, birthdate, author.Birthdate)
		})
	}
}

func TestGetAuthorInfo(t *testing.T) {
	t.Parallel()

	const (
		id   = "7d9f0339-32d8-4429-9ac6-3e0426c7ba07"
		name = "testName"
	)

	tests := []struct {
		name          string
		requireAuthor entity.Author
		requireErr    error
	}{
		{
			name: "valid getting info",
			requireAuthor: entity.Author{
				ID:   id,
				Name: name,
			}},

		{
			name:       "get info with internal error",
			requireErr: errInternalAuthor},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			env := initAuthorTest(t)

			env.authorRepo.EXPECT().GetAuthorInfo(env.ctx, id).Return(test.requireAuthor, test.requireErr)

			author, err := env.service.GetAuthorInfo(env.ctx, id)
			require.ErrorIs(t, err, test.requireErr)
			require.Equal(t, test.requireAuthor, author)
		})
	}
}
