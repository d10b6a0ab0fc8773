// Package buffer provides a thread-safe text buffer with a maintained
// line-start index. It serves as the primary interface for text
// manipulation in the editor engine.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Line-oriented queries: spans, starts, ends, line lookup by offset
//   - Coordinate conversion between byte offsets and line/column positions
//   - Read-only snapshots for concurrent access
//   - Line ending detection and normalization (content is LF internally)
//   - Revision tracking for change management
//
// Basic usage:
//
//	// Create a buffer with some text
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	// Insert text
//	buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//
//	// Delete text
//	buf.Delete(0, 7)  // "Beautiful World!"
//
//	// Get a snapshot for concurrent reading
//	snap := buf.Snapshot()
//	go func() {
//	    text := snap.Text()
//	    // Process text...
//	}()
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock. For scenarios
// requiring multiple reads without the possibility of intervening writes,
// use Snapshot() to obtain a consistent read-only view.
package buffer
