//go:build vhal_abort_on_nomem

package alloc

// BuildPolicy is the allocation failure policy compiled into this binary.
const BuildPolicy = PolicyAbort
