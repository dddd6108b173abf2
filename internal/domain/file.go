package domain

import (
	"fmt"
	"time"
)

// File attachment metadata (file table). The bytes live in object storage;
// this row records where. Rows are owned by the content item they are
// attached to and are deleted with it.
type File struct {
	Idx             int64           `gorm:"column:file_idx;primaryKey;autoIncrement" json:"idx"`
	ArticleIdx      int64           `gorm:"column:article_idx;not null;index:idx_file_article" json:"article_idx"`
	ArticleCategory ArticleCategory `gorm:"column:article_category;size:20;not null;index:idx_file_article" json:"article_category"`
	OriginFilename  string          `gorm:"column:origin_filename;size:255;not null" json:"origin_filename"`
	SaveFilename    string          `gorm:"column:save_filename;size:255;not null" json:"save_filename"`
	Extension       string          `gorm:"column:file_ext;size:20" json:"extension"`
	Size            int64           `gorm:"column:file_size;not null" json:"size"`
	Path            string          `gorm:"column:file_path;size:512;uniqueIndex;not null" json:"path"`
	CreatedAt       time.Time       `gorm:"column:file_regdate" json:"created_at"`
}

func (File) TableName() string {
	return "file"
}

// FilePath builds the canonical storage key for an attachment.
func FilePath(category ArticleCategory, articleIdx int64, saveFilename string) string {
	return fmt.Sprintf("%s/%d/%s", category, articleIdx, saveFilename)
}

// FileResponse attachment projection
type FileResponse struct {
	Idx            int64  `json:"idx"`
	OriginFilename string `json:"origin_filename"`
	Extension      string `json:"extension"`
	Size           int64  `json:"size"`
	Path           string `json:"path"`
}

// ToResponse converts a File to its projection
func (f *File) ToResponse() *FileResponse {
	return &FileResponse{
		Idx:            f.Idx,
		OriginFilename: f.OriginFilename,
		Extension:      f.Extension,
		Size:           f.Size,
		Path:           f.Path,
	}
}
