package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/realcloud/internal/store"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type createNewsPostRequest struct {
	Title   string `json:"title" binding:"required,min=2,max=100"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type likeRequest struct {
	UserID string `json:"userId"`
}

// newsPostView 在存储模型之外附带服务端渲染好的 HTML
type newsPostView struct {
	store.NewsPost
	ContentHTML string `json:"contentHtml"`
}

func newsPostToView(post store.NewsPost) newsPostView {
	return newsPostView{NewsPost: post, ContentHTML: renderMarkdown(post.Content)}
}

// renderMarkdown 把公告正文的 Markdown 渲染为净化后的 HTML
func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}

// GetNewsPosts 返回全部公告，最新在前
func (a *API) GetNewsPosts(c *gin.Context) {
	posts, err := a.store.ListNewsPosts()
	if err != nil {
		respondStoreError(c, "Failed to load news posts", err)
		return
	}

	views := make([]newsPostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, newsPostToView(post))
	}
	c.JSON(http.StatusOK, views)
}

// CreateNewsPost 管理员发布公告
func (a *API) CreateNewsPost(c *gin.Context) {
	var req createNewsPostRequest
	if !bindJSON(c, &req, "Invalid news post data") {
		return
	}

	post, err := a.store.CreateNewsPost(req.Title, req.Content)
	if err != nil {
		respondStoreError(c, "Failed to create news post", err)
		return
	}
	c.JSON(http.StatusCreated, newsPostToView(post))
}

// DeleteNewsPost 管理员删除公告，连同其全部点赞记录
func (a *API) DeleteNewsPost(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := a.store.DeleteNewsPost(id)
	if err != nil {
		respondStoreError(c, "Failed to delete news post", err)
		return
	}
	if !deleted {
		respondNotFound(c, "News post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "News post deleted successfully"})
}

// LikeNewsPost 点赞。重复点赞返回 400，公告不存在返回 404。
func (a *API) LikeNewsPost(c *gin.Context) {
	postID, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		respondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	hasLiked, err := a.store.HasUserLikedPost(postID, req.UserID)
	if err != nil {
		respondStoreError(c, "Failed to like post", err)
		return
	}
	if hasLiked {
		respondError(c, http.StatusBadRequest, "User has already liked this post")
		return
	}

	liked, err := a.store.LikeNewsPost(postID, req.UserID)
	if err != nil {
		respondStoreError(c, "Failed to like post", err)
		return
	}
	if !liked {
		respondNotFound(c, "News post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post liked successfully"})
}

// UnlikeNewsPost 取消点赞。没有对应点赞记录或公告不存在都返回 404。
func (a *API) UnlikeNewsPost(c *gin.Context) {
	postID, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		respondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	unliked, err := a.store.UnlikeNewsPost(postID, req.UserID)
	if err != nil {
		respondStoreError(c, "Failed to unlike post", err)
		return
	}
	if !unliked {
		respondNotFound(c, "News post not found or not liked by user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post unliked successfully"})
}

// GetLikeStatus 查询某个访客是否点赞过该公告
func (a *API) GetLikeStatus(c *gin.Context) {
	postID, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	hasLiked, err := a.store.HasUserLikedPost(postID, userID)
	if err != nil {
		respondStoreError(c, "Failed to check like status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasLiked": hasLiked})
}
