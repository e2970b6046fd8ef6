package merge

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File merges the active file with its optional shadow counterpart into a
// fresh FileDescriptorProto. Top-level message and enum types are paired by
// name and merged; shadow-only types are appended verbatim; imports gained
// by recoveries are appended to the dependency list. Inputs are not mutated.
func File(active, shadow *descriptorpb.FileDescriptorProto) (*descriptorpb.FileDescriptorProto, error) {
	target := proto.Clone(active).(*descriptorpb.FileDescriptorProto)
	if shadow == nil {
		return target, nil
	}

	ctx := NewFileContext(target)
	deps := NewDependencySet(target.GetDependency())

	target.MessageType = nil
	activeIndex := 0
	for _, p := range pairByName(active.GetMessageType(), shadow.GetMessageType()) {
		if p.active == nil {
			target.MessageType = append(target.MessageType, proto.Clone(p.shadow).(*descriptorpb.DescriptorProto))
			continue
		}
		merged, err := Message(ctx.ExtendMessage(activeIndex), p.active, p.shadow, deps)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", active.GetName(), err)
		}
		target.MessageType = append(target.MessageType, merged)
		activeIndex++
	}

	target.EnumType = nil
	for _, p := range pairByName(active.GetEnumType(), shadow.GetEnumType()) {
		if p.active == nil {
			target.EnumType = append(target.EnumType, proto.Clone(p.shadow).(*descriptorpb.EnumDescriptorProto))
			continue
		}
		merged, err := Enum(p.active, p.shadow, deps)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", active.GetName(), err)
		}
		target.EnumType = append(target.EnumType, merged)
	}

	target.Dependency = deps.Names()
	return target, nil
}
