// Package concat implements a deferred-concatenation container: chunks are
// queued in O(1) and joined into one contiguous buffer only when a read
// forces it.
//
// The container's logical value is always the materialized prefix ("root")
// followed by the pending fragments in append order. Reads that need
// contiguous data materialize whole fragments from the front of the queue,
// never splitting one, so a range request may copy slightly past the
// requested end but never touches fragments it does not need.
//
// Builder is the generic element-slice form; Text is the string form.
package concat
