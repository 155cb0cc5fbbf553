package server

import (
	"net/http"

	"sentinelrisk/internal/config"
	"sentinelrisk/internal/database"
	"sentinelrisk/internal/handlers"
	"sentinelrisk/internal/risk"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, store *database.Store) *gin.Engine {
	r := gin.Default()

	// фронтенд живёт на другом origin
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	workflow := risk.NewService(store)
	risks := handlers.NewRiskHandler(store, workflow)
	incidents := handlers.NewIncidentHandler(store)

	// ГЛАВНАЯ
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "SentinelRisk Backend API")
	})

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// РИСКИ
	r.GET("/risks", risks.List)
	r.POST("/risks", risks.Create)
	// gin не допускает статический сегмент рядом с :id,
	// поэтому /risks/critical диспетчеризуем вручную
	r.GET("/risks/:id", func(c *gin.Context) {
		if c.Param("id") == "critical" {
			risks.Critical(c)
			return
		}
		risks.Get(c)
	})
	r.PUT("/risks/:id", risks.Update)
	r.DELETE("/risks/:id", risks.Delete)

	// WORKFLOW СТАТУСОВ
	r.PATCH("/risks/:id/status", risks.UpdateStatus)
	r.GET("/risks/:id/history", risks.History)

	// ОЦЕНКИ
	r.POST("/risks/:id/evaluation", risks.CreateEvaluation)
	r.GET("/risks/:id/evaluation", risks.GetEvaluation)

	// ИНЦИДЕНТЫ
	r.GET("/incidents", incidents.List)
	r.POST("/incidents", incidents.Create)
	r.GET("/incidents/:id", incidents.Get)
	r.PUT("/incidents/:id", incidents.Update)
	r.DELETE("/incidents/:id", incidents.Delete)

	return r
}
