package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jask/coursedeck/internal/source"
)

// listResponse is the envelope for every catalog list.
type listResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter wires the catalog read endpoints under /api.
func NewRouter(src source.Source, lgr zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(lgr))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/departments", listHandler(lgr, src.Departments))
	api.GET("/semesters", listHandler(lgr, src.Semesters))
	api.GET("/subjects", listHandler(lgr, src.Subjects))
	return r
}

func listHandler[T any](lgr zerolog.Logger, fetch func(context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := fetch(c.Request.Context())
		if err != nil {
			lgr.Error().Err(err).Str("path", c.FullPath()).Msg("catalog list failed")
			c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		if list == nil {
			list = []T{}
		}
		c.JSON(http.StatusOK, listResponse[T]{Data: list, Count: len(list)})
	}
}

func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("client", c.ClientIP()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
