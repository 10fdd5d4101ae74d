package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListClampsPageSize(t *testing.T) {
	l := NewList(0)
	assert.Equal(t, 1, l.PageSize)
	assert.Equal(t, -1, l.Selected())
}

func TestListScrollsWithCursor(t *testing.T) {
	l := NewList(3)
	l.SetLen(5)

	l.Down()
	l.Down()
	assert.Equal(t, 2, l.Cursor)
	assert.Equal(t, 0, l.Offset)

	l.Down()
	assert.Equal(t, 3, l.Cursor)
	assert.Equal(t, 1, l.Offset)

	l.Down()
	l.Down()
	assert.Equal(t, 4, l.Cursor)
	assert.Equal(t, 2, l.Offset)

	start, end := l.Window()
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)
}

func TestListUpStopsAtTop(t *testing.T) {
	l := NewList(2)
	l.SetLen(4)
	l.Down()
	l.Down()
	l.Down()
	assert.Equal(t, 2, l.Offset)

	l.Up()
	l.Up()
	assert.Equal(t, 1, l.Cursor)
	assert.Equal(t, 1, l.Offset)

	l.Up()
	l.Up()
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, 0, l.Offset)
}

func TestListSetLenShrinksCursor(t *testing.T) {
	l := NewList(2)
	l.SetLen(4)
	for range 3 {
		l.Down()
	}
	l.SetLen(2)
	assert.Equal(t, 1, l.Cursor)
	assert.Equal(t, 0, l.Offset)

	start, end := l.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	l.SetLen(0)
	assert.Equal(t, -1, l.Selected())
}

func TestListReset(t *testing.T) {
	l := NewList(1)
	l.SetLen(3)
	l.Down()
	l.Down()
	l.Reset()
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 0, l.Offset)
}
