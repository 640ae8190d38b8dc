package main

import (
	"net/http"
	"time"

	"github.com/abhishek622/careerOS/pkg/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// recoverPanic turns a handler panic into the uniform error envelope.
func (app *application) recoverPanic() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		app.Logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		response.Error(c, http.StatusInternalServerError, "internal server error")
	})
}

func (app *application) logRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (app *application) cors() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     app.Config.GetCORSOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           5 * time.Minute,
	})
}
