// Package annotations wires up the custom option extensions referenced by
// Envoy API descriptors.
//
// Importing this package registers the generated Go packages for the
// annotation protos (google.api, validate.validate, envoy.annotations,
// udpa.annotations) with the process-wide protobuf registry, so option
// extensions resolve when text-format descriptors are parsed. This is the
// load-once initialization step the merge engine relies on; the package also
// exposes the two option lookups the merge needs to decide import
// augmentation.
package annotations
