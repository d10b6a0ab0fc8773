package buffer

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	text       string
	lines      lineIndex
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns text in the given byte range, clamped to the snapshot.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	start = clampOffset(start, ByteOffset(len(s.text)))
	end = clampOffset(end, ByteOffset(len(s.text)))
	if start >= end {
		return ""
	}
	return s.text[start:end]
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() uint32 {
	return s.lines.count()
}

// LineText returns the text of a specific line (without newline).
func (s *Snapshot) LineText(line uint32) string {
	start := s.lines.start(line)
	end := s.lines.end(line, ByteOffset(len(s.text)))
	return s.text[start:end]
}

// LineLen returns the length of a specific line in bytes (without newline).
func (s *Snapshot) LineLen(line uint32) int {
	start := s.lines.start(line)
	end := s.lines.end(line, ByteOffset(len(s.text)))
	return int(end - start)
}

// LineStart returns the byte offset of the start of a line.
func (s *Snapshot) LineStart(line uint32) ByteOffset {
	return s.lines.start(line)
}

// LineSpan returns the range of a line including its terminator.
func (s *Snapshot) LineSpan(line uint32) Range {
	return s.lines.span(line, ByteOffset(len(s.text)))
}

// LineAt returns the line containing the given offset.
func (s *Snapshot) LineAt(offset ByteOffset) uint32 {
	return s.lines.lineAt(clampOffset(offset, ByteOffset(len(s.text))))
}

// OffsetToPoint converts a byte offset to line/column.
func (s *Snapshot) OffsetToPoint(offset ByteOffset) Point {
	offset = clampOffset(offset, ByteOffset(len(s.text)))
	line := s.lines.lineAt(offset)
	return Point{Line: line, Column: uint32(offset - s.lines.start(line))}
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// LineEnding returns the snapshot's on-disk line ending style.
func (s *Snapshot) LineEnding() LineEnding {
	return s.lineEnding
}

// TabWidth returns the snapshot's tab width.
func (s *Snapshot) TabWidth() int {
	return s.tabWidth
}
