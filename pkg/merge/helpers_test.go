package merge

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func field(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
	}
}

func oneofField(name string, number, oneofIndex int32) *descriptorpb.FieldDescriptorProto {
	f := field(name, number)
	f.OneofIndex = proto.Int32(oneofIndex)
	return f
}

func structField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	f := field(name, number)
	f.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
	f.TypeName = proto.String(".google.protobuf.Struct")
	return f
}

func oneofDecl(name string) *descriptorpb.OneofDescriptorProto {
	return &descriptorpb.OneofDescriptorProto{Name: proto.String(name)}
}

func enumValue(name string, number int32) *descriptorpb.EnumValueDescriptorProto {
	return &descriptorpb.EnumValueDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
	}
}

// msgReserved is a singleton message reserved range (end exclusive).
func msgReserved(n int32) *descriptorpb.DescriptorProto_ReservedRange {
	return &descriptorpb.DescriptorProto_ReservedRange{
		Start: proto.Int32(n),
		End:   proto.Int32(n + 1),
	}
}

// enumReserved is a singleton enum reserved range (end inclusive).
func enumReserved(n int32) *descriptorpb.EnumDescriptorProto_EnumReservedRange {
	return &descriptorpb.EnumDescriptorProto_EnumReservedRange{
		Start: proto.Int32(n),
		End:   proto.Int32(n),
	}
}

func fieldNames(fields []*descriptorpb.FieldDescriptorProto) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.GetName()
	}
	return names
}

func valueNames(values []*descriptorpb.EnumValueDescriptorProto) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.GetName()
	}
	return names
}
