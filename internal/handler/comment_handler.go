package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy 把用户提交的留言剥离成纯文本
var strictPolicy = bluemonday.StrictPolicy()

type createCommentRequest struct {
	Author  string `json:"author" binding:"required,min=2,max=50"`
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// GetComments 返回全部留言，最新在前
func (a *API) GetComments(c *gin.Context) {
	comments, err := a.store.ListComments()
	if err != nil {
		respondStoreError(c, "Failed to load comments", err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment 校验并创建一条留言
func (a *API) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if !bindJSON(c, &req, "Invalid comment data") {
		return
	}

	author := strings.TrimSpace(strictPolicy.Sanitize(req.Author))
	content := strings.TrimSpace(strictPolicy.Sanitize(req.Content))
	// 剥离标签后可能只剩空白，等同于无效输入
	if author == "" || content == "" {
		respondError(c, http.StatusBadRequest, "Invalid comment data")
		return
	}

	comment, err := a.store.CreateComment(author, content)
	if err != nil {
		respondStoreError(c, "Failed to create comment", err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment 删除指定留言
func (a *API) DeleteComment(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := a.store.DeleteComment(id)
	if err != nil {
		respondStoreError(c, "Failed to delete comment", err)
		return
	}
	if !deleted {
		respondNotFound(c, "Comment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted successfully"})
}
