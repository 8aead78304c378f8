// Package alloc provides the accounting allocator that owns every variable
// length buffer and heap record in the vehiclenet module.
//
// Go releases memory through the garbage collector, so ownership is tracked
// explicitly: a buffer is live from Bytes until FreeBytes, a record is live
// from Record until FreeRecord. Stats exposes the live counters, which return
// to zero once every owner has released what it holds. Freeing a buffer or a
// record that is not live (a double free, or a slice aliasing another owner's
// storage) is reported as ErrNotOwned instead of corrupting the counters.
package alloc

// Allocator hands out owned buffers and accounts for heap records.
// Implementations must be safe for concurrent use.
type Allocator interface {
	// Bytes returns a new zeroed buffer of exactly n bytes. n must be > 0.
	Bytes(n int) ([]byte, error)
	// FreeBytes returns a buffer obtained from Bytes. Empty buffers are ignored.
	FreeBytes(b []byte) error
	// Record accounts for the heap record p, which must be a non-nil pointer
	// not already live.
	Record(p any) error
	// FreeRecord releases a record accounted by Record.
	FreeRecord(p any) error
	// Stats returns a snapshot of the allocation counters.
	Stats() Stats
}

// Stats is a snapshot of allocator counters.
type Stats struct {
	LiveBytes   int64  // Bytes held by live buffers.
	LiveBuffers int    // Buffers obtained and not yet freed.
	LiveRecords int    // Records obtained and not yet freed.
	Allocs      uint64 // Successful buffer and record allocations.
	Frees       uint64 // Successful buffer and record releases.
	Failures    uint64 // Allocation requests refused.
}

// Leaked reports whether any buffer or record is still live.
func (s Stats) Leaked() bool {
	return s.LiveBytes != 0 || s.LiveBuffers != 0 || s.LiveRecords != 0
}
