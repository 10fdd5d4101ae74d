package components

// List is a cursor over n rows with a scrolling window of PageSize rows.
type List struct {
	Len      int
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates an empty list.
func NewList(pageSize int) *List {
	return &List{PageSize: max(pageSize, 1)}
}

// SetLen replaces the row count, keeping the cursor in range.
func (l *List) SetLen(n int) {
	l.Len = max(n, 0)
	if l.Cursor >= l.Len {
		l.Cursor = max(l.Len-1, 0)
	}
	l.Offset = min(l.Offset, max(l.Len-l.PageSize, 0), l.Cursor)
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
}

// Reset moves the cursor back to the first row.
func (l *List) Reset() {
	l.Cursor, l.Offset = 0, 0
}

func (l *List) Down() {
	if l.Cursor >= l.Len-1 {
		return
	}
	l.Cursor++
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset++
	}
}

func (l *List) Up() {
	if l.Cursor == 0 {
		return
	}
	l.Cursor--
	if l.Cursor < l.Offset {
		l.Offset--
	}
}

// Window returns the [start, end) range of visible rows.
func (l *List) Window() (int, int) {
	return l.Offset, min(l.Offset+l.PageSize, l.Len)
}

// Selected returns the cursor index, or -1 when the list is empty.
func (l *List) Selected() int {
	if l.Len == 0 {
		return -1
	}
	return l.Cursor
}
