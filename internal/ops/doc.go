// Package ops implements axis-indexed gather and scatter over dynamic-rank arrays,
// together with the shape, reduction and contraction routines that usually surround
// them in model code.
//
// Gather and Scatter report failures through typed errors (see ErrorKind and KindOf).
// The remaining operations return package sentinel errors wrapped with context;
// test them with errors.Is.
//
// Gather and Scatter always run on the calling goroutine. Element-wise operations
// and Einsum split their work according to ParallelConfig.
package ops
