// Package holder provides reference-counted lists of property values and
// property configs, used as the payload of read, write and notification
// batches.
//
// Each list carries an Ownership fixed at construction:
//
//   - Owning: the list is the sole owner of its elements. When the last
//     holder releases the list, every element's buffer is freed, then the
//     element record, then the sequence.
//   - Borrowing: the list is a view over elements owned elsewhere. Destroying
//     it drops only the sequence; the elements survive.
//
// Sharing is by reference count. NewValueList and NewConfigList return a
// list held once; Acquire adds a holder and Release drops one. The list is
// destroyed exactly when the count reaches zero, and a destroyed list refuses
// further Acquire, Release and Append calls with ErrReleased.
//
// Reference counting is safe for concurrent use. Mutating the sequence is
// not: callers serialize Append against other Append and All calls.
package holder
