package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/realcloud/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("realcloud_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	apiGroup.Use(handler.VisitorCookie())
	{
		// 留言板
		apiGroup.GET("/comments", api.GetComments)
		apiGroup.POST("/comments", api.CreateComment)
		apiGroup.DELETE("/comments/:id", api.DeleteComment)

		// 公告（读公开，写需要管理员）
		apiGroup.GET("/news", api.GetNewsPosts)
		apiGroup.POST("/news", api.AdminRequired(), api.CreateNewsPost)
		apiGroup.DELETE("/news/:id", api.AdminRequired(), api.DeleteNewsPost)

		// 点赞
		apiGroup.POST("/news/:id/like", api.LikeNewsPost)
		apiGroup.POST("/news/:id/unlike", api.UnlikeNewsPost)
		apiGroup.GET("/news/:id/liked", api.GetLikeStatus)

		// Discord 服务器信息
		apiGroup.GET("/discord-guild", api.GetDiscordGuild)

		// 管理员登录
		apiGroup.POST("/admin/login", api.Login)
	}

	return r
}
