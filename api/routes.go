/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers
 */

package api

import (
	"brandreview-service/api/controllers"
	apimiddleware "brandreview-service/api/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r *chi.Mux) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// API密钥鉴权, 未配置 API_KEY_HASH 时透传
	r.Use(apimiddleware.NewAPIKeyAuthMiddleware().Handler)

	// 健康检查
	healthController := controllers.NewHealthController()
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 品牌审查
	r.Route("/review", func(r chi.Router) {
		reviewController := controllers.NewReviewController()

		// 分析执行与快照
		r.Post("/analyses", reviewController.Analyze)
		r.Get("/analyses/last", reviewController.GetLast)
		r.Get("/analyses/last/export", reviewController.Export)
		r.Post("/analyses/import", reviewController.Import)

		// 历史与对比
		r.Get("/history", reviewController.GetHistory)
		r.Delete("/history", reviewController.ClearHistory)
		r.Post("/compare", reviewController.Compare)

		// 归档记录
		r.Get("/records", reviewController.GetRecords)
		r.Get("/records/{id}", reviewController.GetRecord)
		r.Delete("/records/{id}", reviewController.DeleteRecord)

		// 规则管理
		rulesController := controllers.NewRulesController()
		r.Get("/rules", rulesController.GetRuleSet)
		r.Get("/rules/status", rulesController.GetStatus)
		r.Post("/rules/reload", rulesController.Reload)
		r.Get("/rules/audits", rulesController.GetAudits)

		// 内容检视
		contentController := controllers.NewContentController()
		r.Post("/content/inspect", contentController.Inspect)
	})
}
