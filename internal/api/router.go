package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-catch-automation/internal/catch"
)

// NewRouter wires the command routes onto a gin engine
func NewRouter(s *Server) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Catch automation API is running!",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/init", s.handleInit)
		api.POST("/login", s.handleLogin)
		api.GET("/status", s.handleStatus)

		api.POST("/recruit", s.handleRecruit)
		api.POST("/filter-it", s.handleFilter(catch.CategoryIT))
		api.POST("/filter-bigdata-ai", s.handleFilter(catch.CategoryBigDataAI))

		api.GET("/extract-jobs", s.handleExtractJobs)
		api.GET("/extract-first-page-jobs", s.handleExtractFirstPage)
		api.GET("/extract-all-jobs", s.handleExtractAllJobs)
		api.GET("/homepage-jobs", s.handleHomepageJobs)

		api.POST("/search-company", s.handleSearchCompany)
		api.POST("/job-detail", s.handleJobDetail)
		api.POST("/search-company-info", s.handleCompanyInfo)
	}

	return r
}
