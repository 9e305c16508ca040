// Package reconcile updates the grouped index to match the current on-disk
// state of the buckets, rescanning only buckets whose fingerprint changed.
//
// The engine compares each listed bucket's current fingerprint against the
// one recorded in the index. Unchanged buckets are never rescanned, which is
// the fast path that keeps repeated invocations cheap. Buckets that disappear
// from the filesystem are not visited and their index entries are retained;
// pruning them is an explicit non-feature of this pass.
package reconcile
