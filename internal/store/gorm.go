package store

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore 是 Store 的 sqlite 实现，语义与内存实现完全一致。
// 点赞/取消点赞以及级联删除都包在同一个事务里，保证计数和
// 点赞集合一起更新。
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite 打开（或创建）sqlite 数据库并迁移全部模型。
func OpenSQLite(path string) (*GormStore, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewGormStore(gdb)
}

// NewGormStore 在一个已打开的连接上构造存储并执行自动迁移。
func NewGormStore(gdb *gorm.DB) (*GormStore, error) {
	if gdb == nil {
		return nil, errors.New("nil gorm connection")
	}
	if err := gdb.AutoMigrate(&Comment{}, &NewsPost{}, &PostLike{}); err != nil {
		return nil, err
	}
	return &GormStore{db: gdb}, nil
}

func (s *GormStore) ListComments() ([]Comment, error) {
	var comments []Comment
	if err := s.db.Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) CreateComment(author, content string) (Comment, error) {
	comment := Comment{Author: author, Content: content}
	if err := s.db.Create(&comment).Error; err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func (s *GormStore) DeleteComment(id int) (bool, error) {
	result := s.db.Delete(&Comment{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) ListNewsPosts() ([]NewsPost, error) {
	var posts []NewsPost
	if err := s.db.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *GormStore) CreateNewsPost(title, content string) (NewsPost, error) {
	post := NewsPost{Title: title, Content: content, Likes: 0}
	if err := s.db.Create(&post).Error; err != nil {
		return NewsPost{}, err
	}
	return post, nil
}

func (s *GormStore) DeleteNewsPost(id int) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&NewsPost{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("post_id = ?", id).Delete(&PostLike{}).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *GormStore) LikeNewsPost(postID int, userID string) (bool, error) {
	liked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post NewsPost
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var count int64
		if err := tx.Model(&PostLike{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := tx.Create(&PostLike{PostID: postID, UserID: userID}).Error; err != nil {
			return err
		}
		if err := tx.Model(&NewsPost{}).Where("id = ?", postID).
			Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (s *GormStore) UnlikeNewsPost(postID int, userID string) (bool, error) {
	unliked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post NewsPost
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&PostLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		// 与删除点赞同一事务内更新计数，下限 0 兜底
		if err := tx.Model(&NewsPost{}).Where("id = ?", postID).
			Update("likes", gorm.Expr("MAX(likes - 1, 0)")).Error; err != nil {
			return err
		}
		unliked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return unliked, nil
}

func (s *GormStore) HasUserLikedPost(postID int, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
