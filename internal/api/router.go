package api

import (
	"nexus-pipeline/internal/api/handler"
	"nexus-pipeline/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "nexus-pipeline/docs"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/runs", handler.CreateRun)
	r.GET("/api/v1/runs", handler.ListRuns)
	r.GET("/api/v1/runs/*/results", handler.GetRunResults)
	r.GET("/api/v1/runs/*/errors", handler.GetRunErrors)
	r.GET("/api/v1/runs/*", handler.GetRun)

	r.POST("/api/v1/process", handler.ProcessData)
	r.POST("/api/v1/streams/analyze", handler.AnalyzeStreams)

	r.Handle("/swagger/", httpSwagger.WrapHandler)
}
