package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ChangeAuthorInfoDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "book_management_change_author_info_duration_ms",
	Help:    "Duration of ChangeAuthorInfo in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ChangeAuthorInfoDuration)
}

func (i *implementation) ChangeAuthorInfo(c *gin.Context) {
	start := time.Now()

	defer func() {
		ChangeAuthorInfoDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	idAuthor := c.Param("id")
	if _, err := uuid.Parse(idAuthor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); log.ErrorChangeAuthorInfo(i.logger, err, "Got invalid request", traceID, idAuthor, req.Name) {
		span.SetAttributes(attribute.String("author_id", idAuthor))
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := i.authorUseCase.ChangeAuthorInfo(ctx, idAuthor, req.Name, req.ParsedBirthdate())

	if err != nil {
		if errors.Is(err, entity.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": entity.ErrAuthorNotFound.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, author)
}
