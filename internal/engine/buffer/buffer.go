package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// LineEnding specifies the on-disk line ending style.
// Buffer content is held with LF endings internally regardless of style;
// the style is applied again when the buffer is encoded for saving.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer holds editable text with a maintained line index.
// It provides the primary interface for text manipulation.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lines      lineIndex
	revisionID RevisionID
	lineEnding LineEnding
	endingSet  bool
	tabWidth   int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      buildLineIndex(""),
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		tabWidth:   4,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// The line ending style is detected from the content unless an option
// already set one.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	if !b.endingSet {
		b.lineEnding = DetectLineEnding(s)
	}
	b.text = normalizeNewlines(s)
	b.lines = buildLineIndex(b.text)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read all content first so CRLF sequences split across read
	// boundaries normalize correctly.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// normalizeNewlines converts CRLF and CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Read Operations

// Text returns the full buffer content as a string, LF-terminated.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Encoded returns the buffer content with the on-disk line ending applied.
func (b *Buffer) Encoded() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.lineEnding == LineEndingLF {
		return b.text
	}
	return strings.ReplaceAll(b.text, "\n", b.lineEnding.Sequence())
}

// TextRange returns text in the given byte range, clamped to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start = clampOffset(start, ByteOffset(len(b.text)))
	end = clampOffset(end, ByteOffset(len(b.text)))
	if start >= end {
		return ""
	}
	return b.text[start:end]
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// LineCount returns the number of lines.
// An empty buffer has one (empty) line; text ending in a newline has a
// trailing empty line.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines.count()
}

// LineText returns the text of a specific line (without newline).
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start := b.lines.start(line)
	end := b.lines.end(line, ByteOffset(len(b.text)))
	return b.text[start:end]
}

// LineLen returns the length of a specific line in bytes (without newline).
func (b *Buffer) LineLen(line uint32) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start := b.lines.start(line)
	end := b.lines.end(line, ByteOffset(len(b.text)))
	return int(end - start)
}

// LineStart returns the byte offset of the start of a line.
func (b *Buffer) LineStart(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines.start(line)
}

// LineEnd returns the byte offset of the end of a line (before newline).
func (b *Buffer) LineEnd(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines.end(line, ByteOffset(len(b.text)))
}

// LineSpan returns the range of a line including its terminator.
// The final line's span has no terminator and ends at the buffer end.
func (b *Buffer) LineSpan(line uint32) Range {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines.span(line, ByteOffset(len(b.text)))
}

// LineAt returns the line containing the given offset.
// The buffer-end offset belongs to the last line.
func (b *Buffer) LineAt(offset ByteOffset) uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines.lineAt(clampOffset(offset, ByteOffset(len(b.text))))
}

// Coordinate Conversion

// OffsetToPoint converts a byte offset to line/column.
// Offsets outside the buffer clamp to the nearest valid position.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	offset = clampOffset(offset, ByteOffset(len(b.text)))
	line := b.lines.lineAt(offset)
	return Point{Line: line, Column: uint32(offset - b.lines.start(line))}
}

// PointToOffset converts line/column to a byte offset.
// The line clamps to the last line and the column clamps to the line
// length, so every point maps to a valid offset.
func (b *Buffer) PointToOffset(point Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	line := point.Line
	if line >= b.lines.count() {
		line = b.lines.count() - 1
	}
	start := b.lines.start(line)
	end := b.lines.end(line, ByteOffset(len(b.text)))
	col := ByteOffset(point.Column)
	if col > end-start {
		col = end - start
	}
	return start + col
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return 0, ErrOffsetOutOfRange
	}

	text = normalizeNewlines(text)
	b.text = b.text[:offset] + text + b.text[offset:]
	b.reindex()

	return offset + ByteOffset(len(text)), nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > ByteOffset(len(b.text)) {
		return ErrRangeInvalid
	}

	b.text = b.text[:start] + b.text[end:]
	b.reindex()

	return nil
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > ByteOffset(len(b.text)) {
		return 0, ErrRangeInvalid
	}

	text = normalizeNewlines(text)
	b.text = b.text[:start] + text + b.text[end:]
	b.reindex()

	return start + ByteOffset(len(text)), nil
}

// ApplyEdit applies a single edit to the buffer and reports what changed,
// including the replaced text so the edit can be undone.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End ||
		edit.Range.End > ByteOffset(len(b.text)) {
		return EditResult{}, ErrRangeInvalid
	}

	oldText := b.text[edit.Range.Start:edit.Range.End]
	text := normalizeNewlines(edit.NewText)
	b.text = b.text[:edit.Range.Start] + text + b.text[edit.Range.End:]
	b.reindex()

	newEnd := edit.Range.Start + ByteOffset(len(text))

	return EditResult{
		OldRange: edit.Range,
		NewRange: Range{Start: edit.Range.Start, End: newEnd},
		OldText:  oldText,
		Delta:    int64(len(text)) - int64(edit.Range.Len()),
	}, nil
}

// reindex rebuilds the line index and bumps the revision.
// Callers must hold the write lock.
func (b *Buffer) reindex() {
	b.lines = buildLineIndex(b.text)
	b.revisionID = NewRevisionID()
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text) == 0
}

// LineEnding returns the buffer's on-disk line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding sets the on-disk line ending style used by Encoded.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// SetTabWidth sets the buffer's tab width.
func (b *Buffer) SetTabWidth(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if width > 0 {
		b.tabWidth = width
	}
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &Snapshot{
		text:       b.text, // strings are immutable, safe to share
		lines:      b.lines,
		revisionID: b.revisionID,
		lineEnding: b.lineEnding,
		tabWidth:   b.tabWidth,
	}
}

// clampOffset clamps an offset into [0, max].
func clampOffset(offset, max ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
