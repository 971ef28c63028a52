package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/t-suguru/book-management/internal/controller/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var errInternal = errors.New("internal error")

func initAuthorTest(t *testing.T) (*mocks.MockAuthorUseCase, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	authorUseCase := mocks.NewMockAuthorUseCase(ctrl)

	router := gin.New()
	New(zap.NewNop(), nil, authorUseCase, nil).RegisterRoutes(router)

	return authorUseCase, router
}

func initBooksTest(t *testing.T) (*mocks.MockBooksUseCase, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	booksUseCase := mocks.NewMockBooksUseCase(ctrl)

	router := gin.New()
	New(zap.NewNop(), booksUseCase, nil, nil).RegisterRoutes(router)

	return booksUseCase, router
}

func initAuthorBooksTest(t *testing.T) (*mocks.MockAuthorBooksUseCase, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	authorBooksUseCase := mocks.NewMockAuthorBooksUseCase(ctrl)

	router := gin.New()
	New(zap.NewNop(), nil, nil, authorBooksUseCase).RegisterRoutes(router)

	return authorBooksUseCase, router
}

func performRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}
