package domain

import (
	"testing"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestNewNotice_Valid(t *testing.T) {
	n, err := NewNotice(1, strPtr("hello"), strPtr("world"), false)

	assert.NoError(t, err)
	assert.True(t, n.Activated)
	assert.Equal(t, int64(1), n.WriterIdx)
	assert.Equal(t, "hello", n.Title)
}

func TestNewNotice_MissingTitle(t *testing.T) {
	_, err := NewNotice(1, nil, strPtr("world"), false)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, NullField, verr.Kind)
}

func TestNoticeUpdate_RevalidatesAndKeepsOldOnFailure(t *testing.T) {
	n, _ := NewNotice(1, strPtr("old title"), strPtr("old contents"), false)

	err := n.Update(strPtr(""), strPtr("new contents"))

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, EmptyField, verr.Kind)
	assert.Equal(t, "old title", n.Title)
	assert.Equal(t, "old contents", n.Contents)
}

func TestNoticeDisable_Twice(t *testing.T) {
	n, _ := NewNotice(1, strPtr("t"), strPtr("c"), false)

	assert.NoError(t, n.Disable())
	assert.ErrorIs(t, n.Disable(), common.ErrAlreadyInactive)
}

func TestNoticeEnable_WhenAlreadyActive(t *testing.T) {
	n, _ := NewNotice(1, strPtr("t"), strPtr("c"), false)

	assert.ErrorIs(t, n.Enable(), common.ErrAlreadyActive)

	assert.NoError(t, n.Disable())
	assert.NoError(t, n.Enable())
	assert.True(t, n.Activated)
}
