package store

import "time"

// Comment 留言板中的一条用户留言
type Comment struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Author    string    `json:"author" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsPost 社区公告。Likes 是 PostLike 集合基数的缓存值，
// 只能由 LikeNewsPost/UnlikeNewsPost 维护，两者必须把计数和
// 成员集合当作同一个原子步骤更新。
type NewsPost struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Likes     int       `json:"likes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostLike 记录某个访客对某条公告的点赞。
// 对同一 (PostID, UserID) 至多存在一条记录。
type PostLike struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	PostID    int       `json:"postId" gorm:"index;not null"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store 是全部可变状态的唯一入口。
//
// “未找到”一律用布尔返回值表达而不是 error；error 只用于底层
// 存储自身的意外失败（内存实现永远返回 nil）。字段长度校验由
// HTTP 层负责，Store 不再重复校验。
type Store interface {
	// ListComments 返回全部留言，按创建时间倒序（最新在前）。
	ListComments() ([]Comment, error)
	// CreateComment 分配下一个留言 ID 并写入当前时间戳。
	CreateComment(author, content string) (Comment, error)
	// DeleteComment 删除指定留言，返回是否真的删除了记录。
	DeleteComment(id int) (bool, error)

	// ListNewsPosts 返回全部公告，按创建时间倒序。
	ListNewsPosts() ([]NewsPost, error)
	// CreateNewsPost 创建公告，Likes 初始为 0。
	CreateNewsPost(title, content string) (NewsPost, error)
	// DeleteNewsPost 删除公告并级联删除其全部点赞记录。
	DeleteNewsPost(id int) (bool, error)

	// LikeNewsPost 点赞。公告不存在或该用户已点赞时返回 false，
	// 成功时写入 PostLike 并把计数加一。
	LikeNewsPost(postID int, userID string) (bool, error)
	// UnlikeNewsPost 取消点赞。公告不存在或没有对应点赞记录时
	// 返回 false，成功时删除 PostLike 并把计数减一（下限 0）。
	UnlikeNewsPost(postID int, userID string) (bool, error)
	// HasUserLikedPost 查询该用户是否点赞过该公告，纯查询。
	HasUserLikedPost(postID int, userID string) (bool, error)
}
