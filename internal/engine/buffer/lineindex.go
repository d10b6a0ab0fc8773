package buffer

import "sort"

// lineIndex records the byte offset of every line start in a text.
// It always holds at least one entry (offset 0), so an empty text has
// exactly one empty line. The index is rebuilt after each edit; the
// buffers this editor handles are line-oriented and small enough that
// a linear scan beats the bookkeeping of an incremental structure.
type lineIndex struct {
	starts []ByteOffset
}

// buildLineIndex scans text and returns the index of its line starts.
func buildLineIndex(text string) lineIndex {
	starts := make([]ByteOffset, 1, 16)
	starts[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return lineIndex{starts: starts}
}

// count returns the number of lines.
// A text ending in a newline has a trailing empty line.
func (ix lineIndex) count() uint32 {
	return uint32(len(ix.starts))
}

// start returns the offset of the first byte of the given line.
// Lines past the end clamp to the last line.
func (ix lineIndex) start(line uint32) ByteOffset {
	if int(line) >= len(ix.starts) {
		line = uint32(len(ix.starts) - 1)
	}
	return ix.starts[line]
}

// end returns the offset just past the last content byte of the line,
// before its terminator. textLen is the total text length.
func (ix lineIndex) end(line uint32, textLen ByteOffset) ByteOffset {
	if int(line) >= len(ix.starts)-1 {
		return textLen
	}
	return ix.starts[line+1] - 1
}

// span returns the half-open range of the line including its terminator.
// The final line has no terminator, so its span ends at textLen.
func (ix lineIndex) span(line uint32, textLen ByteOffset) Range {
	if int(line) >= len(ix.starts) {
		line = uint32(len(ix.starts) - 1)
	}
	if int(line) == len(ix.starts)-1 {
		return Range{Start: ix.starts[line], End: textLen}
	}
	return Range{Start: ix.starts[line], End: ix.starts[line+1]}
}

// lineAt returns the line containing the given offset.
// An offset at the very end of the text belongs to the last line.
func (ix lineIndex) lineAt(offset ByteOffset) uint32 {
	if offset <= 0 {
		return 0
	}
	// First line whose start is beyond the offset; the offset's line is
	// the one before it.
	i := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
	return uint32(i - 1)
}
