package router

import (
	"expensetracker/api"
	"expensetracker/config"
	"expensetracker/database"
	_ "expensetracker/docs"
	"expensetracker/repository"
	"expensetracker/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件，前端跨域访问
	r.Use(cors.Default())

	repo := repository.NewExpenseRepository(database.GetDB())
	svc := service.NewExpenseService(repo, service.SystemClock())
	expenseHandler := api.NewExpenseHandler(svc)
	reportHandler := api.NewReportHandler(svc)

	expenses := r.Group("/expenses")
	{
		expenses.POST("", expenseHandler.Create)
		expenses.GET("", expenseHandler.List)

		// 周期查询
		expenses.GET("/weekly", expenseHandler.Weekly)
		expenses.GET("/monthly", expenseHandler.Monthly)
		expenses.GET("/yearly", expenseHandler.Yearly)

		// 统计
		expenses.GET("/statistics/weekly", expenseHandler.WeeklyStatistics)
		expenses.GET("/statistics/monthly", expenseHandler.MonthlyStatistics)
		expenses.GET("/statistics/yearly", expenseHandler.YearlyStatistics)

		// 报表导出
		expenses.GET("/report/excel", reportHandler.ExportExcel)
		expenses.GET("/report/pdf", reportHandler.ExportPDF)

		// 筛选
		expenses.GET("/category/:category", expenseHandler.ByCategory)
		expenses.GET("/currency/:currency", expenseHandler.ByCurrency)

		// 单条记录操作，放在静态路由之后
		expenses.GET("/:id", expenseHandler.Get)
		expenses.PUT("/:id", expenseHandler.Update)
		expenses.DELETE("/:id", expenseHandler.Delete)
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
