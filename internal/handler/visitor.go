package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookieName   = "rc_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// VisitorCookie 给每个访客发一个不透明的标识 cookie，前端拿它当
// 点赞接口的 userId 用，所以不能设成 HttpOnly。
func VisitorCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(visitorCookieName); err == nil && strings.TrimSpace(id) != "" {
			c.Next()
			return
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     visitorCookieName,
			Value:    uuid.NewString(),
			Path:     "/",
			HttpOnly: false,
			Secure:   c.Request.TLS != nil,
			MaxAge:   visitorCookieMaxAge,
			Expires:  time.Now().Add(365 * 24 * time.Hour),
			SameSite: http.SameSiteLaxMode,
		})

		c.Next()
	}
}
