package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/t-suguru/book-management/config"
	"github.com/t-suguru/book-management/internal/usecase/library/mocks"
	mocks2 "github.com/t-suguru/book-management/internal/usecase/outbox/mocks"
	"github.com/t-suguru/book-management/internal/usecase/repository"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type errLayer uint

const (
	none errLayer = iota
	transactor
	getMessage
	globalHandler
	kindHandler
	markAsSuccess
	markAsCreated
)

var errInternal = errors.New("internal error")

var testGlobalHandler = func(kind repository.OutboxKind) (KindHandler, error) {
	switch kind {
	case repository.OutboxKindUndefined:
		return nil, errInternal
	case repository.OutboxKindAuthor:
		return testAuthorHandler, nil
	case repository.OutboxKindBook:
		return testBookHandler, nil
	default:
		panic("unreachable")
	}
}

func testAuthorHandler(_ context.Context, _ []byte) error {
	return nil
}

func testBookHandler(_ context.Context, _ []byte) error {
	return errInternal
}

func Test_outboxImpl_worker(t *testing.T) {
	t.Parallel()

	type args struct {
		wg            *sync.WaitGroup
		batchSize     int
		waitTime      time.Duration
		inProgressTTL time.Duration
	}
	standardArgs := args{
		wg:            new(sync.WaitGroup),
		batchSize:     1,
		waitTime:      time.Nanosecond,
		inProgressTTL: time.Second,
	}

	tests := []struct {
		name                   string
		args                   args
		errL                   errLayer
		enabled                bool
		transactorCount        int
		outboxGetCount         int
		outboxMarkSuccessCount int
		outboxMarkCreatedCount int
		ctxCall                int
	}{
		{
			name:                   "ok iteration",
			args:                   standardArgs,
			errL:                   none,
			enabled:                true,
			transactorCount:        1,
			outboxGetCount:         1,
			outboxMarkSuccessCount: 1,
			outboxMarkCreatedCount: 1,
			ctxCall:                3,
		},

		{
			name:                   "iteration with outbox disabled",
			args:                   standardArgs,
			errL:                   none,
			enabled:                false,
			transactorCount:        0,
			outboxGetCount:         0,
			outboxMarkSuccessCount: 0,
			outboxMarkCreatedCount: 0,
			ctxCall:                3,
		},

		{
			name:                   "transactor err",
			args:                   standardArgs,
			errL:                   transactor,
			enabled:                true,
			transactorCount:        1,
			outboxGetCount:         0,
			outboxMarkSuccessCount: 0,
			outboxMarkCreatedCount: 0,
			ctxCall:                3,
		},

		{
			name:                   "GetMessages err",
			args:                   standardArgs,
			errL:                   getMessage,
			enabled:                true,
			transactorCount:        1,
			outboxGetCount:         1,
			outboxMarkSuccessCount: 0,
			outboxMarkCreatedCount: 0,
			ctxCall:                3,
		},

		{
			name:                   "unknown kind err",
			args:                   standardArgs,
			errL:                   globalHandler,
			enabled:                true,
			transactorCount:        1,
			outboxGetCount:         1,
			outboxMarkSuccessCount: 1,
			outboxMarkCreatedCount: 1,
			ctxCall:                3,
		},

		{
			name:                   "kind handler err",
			args:                   standardArgs,
			errL:                   kindHandler,
			enabled:                true,
			transactorCount:        1,
			outboxGetCount:         1,
			outboxMarkSuccessCount: 1,
			outboxMarkCreatedCount: 1,
			ctxCall:                3,
		},

		{
			name:                   "MarkAs 'SUCCESS' err",
			args:                   standardArgs,
			errL:                   markAsSuccess,
			enabled:                true,
			transactorCount:        1,
			outboxGetCount:         1,
			outboxMarkSuccessCount: 1,
			outboxMarkCreatedCount: 0,
			ctxCall:                3,
		},

		{
			name:                   "MarkAs 'CREATED' err",
			args:                   standardArgs,
			errL:                   markAsCreated,
			enabled:                true,
			transactorCount:        1,
			outboxGetCount:         1,
			outboxMarkSuccessCount: 1,
			outboxMarkCreatedCount: 1,
			ctxCall:                3,
		},

		{
			name:                   "ctx done immediately",
			args:                   standardArgs,
			errL:                   none,
			enabled:                true,
			transactorCount:        0,
			outboxGetCount:         0,
			outboxMarkSuccessCount: 0,
			outboxMarkCreatedCount: 0,
			ctxCall:                1,
		},

		{
			name:                   "ctx done after wait",
			args:                   standardArgs,
			errL:                   none,
			enabled:                true,
			transactorCount:        0,
			outboxGetCount:         0,
			outboxMarkSuccessCount: 0,
			outboxMarkCreatedCount: 0,
			ctxCall:                2,
		},
	}
	logger, e := zap.NewProduction()
	require.NoError(t, e)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tErr := tt.errL
			ctrl := gomock.NewController(t)

			outboxRepo := mocks.NewMockOutboxRepository(ctrl)
			ctx := mocks2.NewMockContext(ctrl)
			tt.args.wg.Add(1)

			inc := 0
			done := make(chan struct{})
			tCtxCall := tt.ctxCall
			ctx.EXPECT().Done().DoAndReturn(func() <-chan struct{} {
				if inc == tCtxCall-1 {
					close(done)
				}
				inc++
				return done
			}).Times(tCtxCall)

			outboxRepo.EXPECT().GetMessages(ctx, tt.args.batchSize, tt.args.inProgressTTL).
				DoAndReturn(func(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error) {
					switch tErr {
					case getMessage:
						return nil, errInternal
					case kindHandler:
						return []repository.OutboxData{{
							Kind: repository.OutboxKindBook,
						}}, nil
					case globalHandler:
						return []repository.OutboxData{{
							Kind: repository.OutboxKindUndefined,
						}}, nil
					default:
						return []repository.OutboxData{{
							Kind: repository.OutboxKindAuthor,
						}}, nil
					}
				}).Times(tt.outboxGetCount)

			outboxRepo.EXPECT().MarkAs(ctx, gomock.Any(), repository.Success).
				DoAndReturn(func(ctx context.Context, idempotencyKeys []string, s repository.Status) error {
					if tErr == markAsSuccess {
						return errInternal
					}
					return nil
				}).Times(tt.outboxMarkSuccessCount)

			outboxRepo.EXPECT().MarkAs(ctx, gomock.Any(), repository.Created).
				DoAndReturn(func(ctx context.Context, idempotencyKeys []string, s repository.Status) error {
					if tErr == markAsCreated {
						return errInternal
					}
					return nil
				}).Times(tt.outboxMarkCreatedCount)

			tr := mocks2.NewMockTransactor(ctrl)
			tr.EXPECT().WithTx(ctx, gomock.Any()).
				DoAndReturn(func(ctx context.Context, f func(ctx context.Context) error) error {
					if tErr == transactor {
						return errInternal
					}
					return f(ctx)
				}).Times(tt.transactorCount)

			cfg := &config.Config{}
			cfg.Outbox.Enabled = tt.enabled

			o := &outboxImpl{
				logger:           logger,
				outboxRepository: outboxRepo,
				globalHandler:    testGlobalHandler,
				cfg:              cfg,
				transactor:       tr,
			}
			o.worker(ctx, tt.args.wg, tt.args.batchSize, tt.args.waitTime, tt.args.inProgressTTL)
		})
	}
}
