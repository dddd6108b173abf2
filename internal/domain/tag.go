package domain

// Tag deduplicated free-text label (tag table)
type Tag struct {
	Idx     int64  `gorm:"column:tag_idx;primaryKey;autoIncrement" json:"idx"`
	Keyword string `gorm:"column:tag_keyword;size:20;uniqueIndex;not null" json:"keyword"`
}

func (Tag) TableName() string {
	return "tag"
}

// BoardTag join row associating a content item with a tag. Rows are owned by
// the content item: they go away when the item is removed or its tags are
// replaced.
type BoardTag struct {
	Idx             int64           `gorm:"column:board_tag_idx;primaryKey;autoIncrement" json:"idx"`
	BoardIdx        int64           `gorm:"column:board_idx;not null;index:idx_board_tag_article" json:"board_idx"`
	ArticleCategory ArticleCategory `gorm:"column:article_category;size:20;not null;index:idx_board_tag_article" json:"article_category"`
	TagIdx          int64           `gorm:"column:tag_idx;not null" json:"tag_idx"`
}

func (BoardTag) TableName() string {
	return "board_tag"
}

// TagResponse tag projection attached to content responses
type TagResponse struct {
	Idx     int64  `json:"idx"`
	Keyword string `json:"keyword"`
}
