// Package slideconv converts premultiplied ARGB pixel buffers, as produced by
// whole-slide image tile decoders, into formats consumers can use directly.
//
// ARGB2RGBA rewrites a buffer in place as straight-alpha RGBA bytes for
// rendering. ARGB2Float fills a separate buffer with normalized RGB float32
// triples for numeric pipelines. Both operate on borrowed views and validate
// every precondition before the first write.
package slideconv
