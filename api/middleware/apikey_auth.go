/*
 * @module api/middleware/apikey_auth
 * @description API密钥鉴权中间件，校验请求头中的密钥与配置的bcrypt哈希
 * @architecture 中间件模式 - HTTP请求拦截和验证
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 密钥提取 -> bcrypt比对 -> 下一个处理器
 * @rules 未配置 API_KEY_HASH 时鉴权关闭; 健康检查与监控端点始终放行
 * @dependencies net/http, golang.org/x/crypto/bcrypt
 * @refs api/routes.go
 */

package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyHeader 密钥请求头
const APIKeyHeader = "X-API-Key"

// skipAuthPaths 无需鉴权的路径前缀
var skipAuthPaths = []string{
	"/health",
	"/ready",
	"/metrics",
	"/swagger",
}

// APIKeyAuthMiddleware API密钥鉴权中间件
type APIKeyAuthMiddleware struct {
	keyHash string
}

// NewAPIKeyAuthMiddleware 创建API密钥鉴权中间件
// 从 API_KEY_HASH 环境变量读取bcrypt哈希, 未配置时鉴权关闭
func NewAPIKeyAuthMiddleware() *APIKeyAuthMiddleware {
	return &APIKeyAuthMiddleware{
		keyHash: os.Getenv("API_KEY_HASH"),
	}
}

// Handler 返回鉴权处理器
func (m *APIKeyAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.keyHash == "" || skipAuth(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(APIKeyHeader)
		if key == "" {
			unauthorized(w, r, "缺少API密钥")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(m.keyHash), []byte(key)); err != nil {
			unauthorized(w, r, "API密钥无效")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// skipAuth 判断路径是否免鉴权
func skipAuth(path string) bool {
	for _, prefix := range skipAuthPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// unauthorized 返回401响应
func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, map[string]interface{}{
		"status": http.StatusUnauthorized,
		"msg":    msg,
	})
}
