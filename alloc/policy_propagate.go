//go:build !vhal_abort_on_nomem

package alloc

// BuildPolicy is the allocation failure policy compiled into this binary.
// Build with -tags vhal_abort_on_nomem to select PolicyAbort.
const BuildPolicy = PolicyPropagate
