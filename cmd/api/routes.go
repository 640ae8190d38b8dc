package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhishek622/careerOS/pkg/response"
)

func (app *application) routes() http.Handler {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(app.logRequest())
	r.Use(app.recoverPanic())
	r.Use(app.cors())

	r.GET("/health", app.Handler.Health)

	api := r.Group("/api")
	{
		api.GET("/entries", app.Handler.ListEntries)
		api.POST("/entries", app.Handler.CreateEntry)
		api.GET("/entries/:id", app.Handler.GetEntry)

		api.POST("/generate-draft", app.Handler.GenerateDraft)

		api.GET("/interview/questions", app.Handler.ListInterviewQuestions)
		api.POST("/interview", app.Handler.SubmitInterview)
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
