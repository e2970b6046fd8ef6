// Package merge reconciles an active FileDescriptorProto with the shadow
// descriptor generated for the previous major API version.
//
// # Overview
//
// Shadow descriptors keep deprecated members alive under the
// "hidden_envoy_deprecated_" renaming convention. The merge walks both trees
// simultaneously and:
//
//   - recovers hidden deprecated fields and enum values back under their
//     original reserved names, removing the matching reserved names and
//     singleton reserved ranges from the result
//   - reattaches recovered oneof members to the target's oneof group of the
//     same name, splicing them next to their live siblings so oneof fields
//     stay contiguous for downstream printers
//   - shifts source code info paths so comments stay attached to the right
//     field after mid-list insertions
//   - preserves shadow-only (fully deprecated) message and enum types
//     verbatim so older clients' serialized shapes remain representable
//   - appends envoy/annotations/deprecation.proto and
//     google/protobuf/struct.proto to the file imports when a recovered
//     member needs them
//
// # Usage Example
//
//	target, err := merge.File(activeFd, shadowFd)
//	if err != nil {
//		return err
//	}
//	// target is a fresh descriptor; activeFd and shadowFd are untouched.
//
// All merge functions are pure: they clone the active node, never mutate
// their inputs, and thread a DependencySet and TypeContext by reference
// through one file merge only.
//
// # Related Packages
//
//   - pkg/annotations: extension lookups used to decide import augmentation
//   - pkg/protoio: text-format and .proto loading of the input descriptors
package merge
