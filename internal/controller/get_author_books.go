package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t-suguru/book-management/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var GetAuthorBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "book_management_get_author_books_duration_ms",
	Help:    "Duration of GetAuthorBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetAuthorBooksDuration)
}

func (i *implementation) GetAuthorBooks(c *gin.Context) {
	start := time.Now()

	defer func() {
		GetAuthorBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	idAuthor := c.Param("id")
	if _, err := uuid.Parse(idAuthor); err != nil {
		span.SetAttributes(attribute.String("author_id", idAuthor))
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	books, err := i.authorBooksUseCase.GetAuthorBooks(ctx, idAuthor)

	if log.ErrorGetAuthorBooks(i.logger, err, "Failed get author books", traceID, idAuthor) {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, books)
}
