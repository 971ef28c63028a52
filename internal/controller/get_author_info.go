package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t-suguru/book-management/internal/entity"
)

var GetAuthorInfoDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "book_management_get_author_info_duration_ms",
	Help:    "Duration of GetAuthorInfo in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetAuthorInfoDuration)
}

func (i *implementation) GetAuthorInfo(c *gin.Context) {
	start := time.Now()

	defer func() {
		GetAuthorInfoDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	idAuthor := c.Param("id")
	if _, err := uuid.Parse(idAuthor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := i.authorUseCase.GetAuthorInfo(c.Request.Context(), idAuthor)

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
