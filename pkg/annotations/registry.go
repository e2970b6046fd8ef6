package annotations

import (
	envoyannotations "github.com/envoyproxy/go-control-plane/envoy/annotations"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	// Registered for side effect only: these generated packages add the
	// extension types for the annotation proto packages Envoy descriptors
	// reference, so text-format option values resolve during parsing.
	_ "github.com/cncf/xds/go/udpa/annotations"
	_ "github.com/envoyproxy/protoc-gen-validate/validate"
	_ "google.golang.org/genproto/googleapis/api/annotations"
)

// structTypeName is the fully qualified type of fields that require
// google/protobuf/struct.proto on the import list.
const structTypeName = ".google.protobuf.Struct"

// Resolver returns the extension-type resolver backed by the process-wide
// registry this package populates on import. Pass it to prototext when
// parsing or serializing descriptors that carry annotation options.
func Resolver() *protoregistry.Types {
	return protoregistry.GlobalTypes
}

// DisallowedByDefault reports whether a field carries the
// envoy.annotations.disallowed_by_default option.
func DisallowedByDefault(f *descriptorpb.FieldDescriptorProto) bool {
	opts := f.GetOptions()
	if opts == nil {
		return false
	}
	return proto.HasExtension(opts, envoyannotations.E_DisallowedByDefault)
}

// DisallowedByDefaultEnum reports whether an enum value carries the
// envoy.annotations.disallowed_by_default_enum option.
func DisallowedByDefaultEnum(v *descriptorpb.EnumValueDescriptorProto) bool {
	opts := v.GetOptions()
	if opts == nil {
		return false
	}
	return proto.HasExtension(opts, envoyannotations.E_DisallowedByDefaultEnum)
}

// IsStructField reports whether a field is typed google.protobuf.Struct.
func IsStructField(f *descriptorpb.FieldDescriptorProto) bool {
	return f.GetTypeName() == structTypeName
}
