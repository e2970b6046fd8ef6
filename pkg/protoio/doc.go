// Package protoio loads and stores FileDescriptorProtos for the merge tool.
//
// # Overview
//
// Two input forms are accepted: text-format descriptor dumps (the form the
// shadow generation pipeline writes) and plain .proto sources, which are
// compiled on the fly with protocompile. Compiled descriptors are cached by
// content hash so watch mode does not recompile unchanged inputs. Output is
// always multiline text format.
//
// # Usage Example
//
//	active, err := protoio.Load(ctx, "v3/config.active.pb.txt")
//	shadow, err := protoio.Load(ctx, "v3/config.shadow.pb.txt")
//	...
//	err = protoio.Store("v3/config.merged.pb.txt", target)
package protoio
