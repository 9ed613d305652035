package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDiscordGuild 返回落地页需要的服务器信息。上游失败时
// GuildService 已经替换成兜底数据，这个接口永远返回 200。
func (a *API) GetDiscordGuild(c *gin.Context) {
	info := a.guilds.FetchGuild(c.Request.Context(), a.guildID)
	c.JSON(http.StatusOK, gin.H{
		"memberCount": info.Members(),
		"name":        info.Name,
		"id":          info.ID,
	})
}
