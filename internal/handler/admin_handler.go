package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionAdminKey = "is_admin"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理管理员登录请求。凭据正确时除了返回成功响应，还会把
// 会话标记为管理员，后续的公告管理请求可以不再携带静态令牌。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !a.credentials.Verify(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, true)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Authentication successful"})
}

// AdminRequired 保护公告管理接口：接受静态 Bearer 令牌，或已经
// 通过 /api/admin/login 认证的会话。
func (a *API) AdminRequired() gin.HandlerFunc {
	expected := "Bearer " + a.adminToken

	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if subtle.ConstantTimeCompare([]byte(auth), []byte(expected)) == 1 {
			c.Next()
			return
		}

		session := sessions.Default(c)
		if isAdmin, ok := session.Get(sessionAdminKey).(bool); ok && isAdmin {
			c.Next()
			return
		}

		respondError(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
	}
}
