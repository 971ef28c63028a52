package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var AddBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "book_management_add_book_duration_ms",
	Help:    "Duration of AddBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddBookDuration)
}

func (i *implementation) AddBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		AddBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); log.ErrorAddBook(i.logger, err, "Got invalid request", traceID, req.Title, req.AuthorIDs) {
		span.SetAttributes(attribute.String("book_title", req.Title))
		span.SetAttributes(attribute.StringSlice("book_authors", req.AuthorIDs))
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, _ := entity.StatusFromString(req.Status)
	book, err := i.booksUseCase.AddBook(ctx, req.Title, *req.Price, status, req.AuthorIDs)

	if err != nil {
		// A missing referenced author is a bad request, not a missing resource.
		if errors.Is(err, entity.ErrAuthorNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, book)
}
