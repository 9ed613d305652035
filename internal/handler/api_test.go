package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/realcloud/internal/service"
	"github.com/realcloud/internal/store"
)

// newTestAPI 组装一套与生产路由一致、但使用独立内存存储的测试环境。
// Discord 服务不配置令牌，永远走兜底数据，测试里不会发真实请求。
func newTestAPI(t *testing.T) (*API, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	credentials, err := service.NewStaticCredentialVerifier("subh", "subh@000")
	if err != nil {
		t.Fatalf("failed to build credential verifier: %v", err)
	}

	guilds := service.NewGuildService("", "https://discord.example/api/v10")
	api := NewAPI(store.NewMemoryStore(), guilds, credentials, "admin", "42")

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	apiGroup := r.Group("/api")
	apiGroup.Use(VisitorCookie())
	{
		apiGroup.GET("/comments", api.GetComments)
		apiGroup.POST("/comments", api.CreateComment)
		apiGroup.DELETE("/comments/:id", api.DeleteComment)

		apiGroup.GET("/news", api.GetNewsPosts)
		apiGroup.POST("/news", api.AdminRequired(), api.CreateNewsPost)
		apiGroup.DELETE("/news/:id", api.AdminRequired(), api.DeleteNewsPost)

		apiGroup.POST("/news/:id/like", api.LikeNewsPost)
		apiGroup.POST("/news/:id/unlike", api.UnlikeNewsPost)
		apiGroup.GET("/news/:id/liked", api.GetLikeStatus)

		apiGroup.GET("/discord-guild", api.GetDiscordGuild)
		apiGroup.POST("/admin/login", api.Login)
	}

	return api, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}

func adminHeader() http.Header {
	return http.Header{"Authorization": []string{"Bearer admin"}}
}
