package store

import (
	"sort"
	"sync"
	"time"
)

type likeKey struct {
	postID int
	userID string
}

// MemoryStore 是 Store 的默认实现：纯内存 map 加一把粗粒度互斥锁，
// 数据只在进程生命周期内有效。每类实体各自维护一个单调递增的 ID
// 计数器，进程内不会复用已分配的 ID。
type MemoryStore struct {
	mu sync.Mutex

	comments  map[int]Comment
	newsPosts map[int]NewsPost
	postLikes map[likeKey]PostLike

	nextCommentID  int
	nextNewsPostID int
	nextPostLikeID int
}

// NewMemoryStore 返回一个空的内存存储。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		comments:       make(map[int]Comment),
		newsPosts:      make(map[int]NewsPost),
		postLikes:      make(map[likeKey]PostLike),
		nextCommentID:  1,
		nextNewsPostID: 1,
		nextPostLikeID: 1,
	}
}

func (s *MemoryStore) ListComments() ([]Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]Comment, 0, len(s.comments))
	for _, comment := range s.comments {
		comments = append(comments, comment)
	}
	sortNewestFirst(comments, func(c Comment) (time.Time, int) { return c.CreatedAt, c.ID })
	return comments, nil
}

func (s *MemoryStore) CreateComment(author, content string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := Comment{
		ID:        s.nextCommentID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.nextCommentID++
	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *MemoryStore) DeleteComment(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}

func (s *MemoryStore) ListNewsPosts() ([]NewsPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]NewsPost, 0, len(s.newsPosts))
	for _, post := range s.newsPosts {
		posts = append(posts, post)
	}
	sortNewestFirst(posts, func(p NewsPost) (time.Time, int) { return p.CreatedAt, p.ID })
	return posts, nil
}

func (s *MemoryStore) CreateNewsPost(title, content string) (NewsPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := NewsPost{
		ID:        s.nextNewsPostID,
		Title:     title,
		Content:   content,
		Likes:     0,
		CreatedAt: time.Now(),
	}
	s.nextNewsPostID++
	s.newsPosts[post.ID] = post
	return post, nil
}

func (s *MemoryStore) DeleteNewsPost(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.newsPosts[id]; !ok {
		return false, nil
	}
	delete(s.newsPosts, id)

	// 级联删除该公告的全部点赞记录，保证不会出现指向已删除
	// 公告的 PostLike
	for key := range s.postLikes {
		if key.postID == id {
			delete(s.postLikes, key)
		}
	}
	return true, nil
}

func (s *MemoryStore) LikeNewsPost(postID int, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.newsPosts[postID]
	if !ok {
		return false, nil
	}

	key := likeKey{postID: postID, userID: userID}
	if _, ok := s.postLikes[key]; ok {
		// 同一用户重复点赞是空操作而不是错误
		return false, nil
	}

	s.postLikes[key] = PostLike{
		ID:        s.nextPostLikeID,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.nextPostLikeID++

	post.Likes++
	s.newsPosts[postID] = post
	return true, nil
}

func (s *MemoryStore) UnlikeNewsPost(postID int, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.newsPosts[postID]
	if !ok {
		return false, nil
	}

	key := likeKey{postID: postID, userID: userID}
	if _, ok := s.postLikes[key]; !ok {
		return false, nil
	}
	delete(s.postLikes, key)

	// 同一把锁内同时更新集合与计数，计数不可能与集合基数脱节；
	// 下限 0 只是兜底
	if post.Likes > 0 {
		post.Likes--
	}
	s.newsPosts[postID] = post
	return true, nil
}

func (s *MemoryStore) HasUserLikedPost(postID int, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.postLikes[likeKey{postID: postID, userID: userID}]
	return ok, nil
}

// sortNewestFirst 按创建时间倒序排序，时间相同的按 ID 倒序，
// 保证同一瞬间创建的记录仍然是后创建的在前。
func sortNewestFirst[T any](items []T, key func(T) (time.Time, int)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}
