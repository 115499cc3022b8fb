package routes

import (
	"crowdreport-be/controllers"
	"crowdreport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the report routes
func ReportRoutes(r *gin.Engine, ctrl *controllers.ReportController) {
	reports := r.Group("/api/reports", middlewares.UserContext())
	{
		reports.GET("", ctrl.ListReports)
		reports.GET("/stats", ctrl.GetStats)
		reports.GET("/map", ctrl.MapReports)
		reports.GET("/:id", ctrl.GetReport)
		reports.POST("", ctrl.SubmitReport)
		reports.POST("/:id/vote", ctrl.VoteReport)
	}
}
