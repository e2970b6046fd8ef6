package merge

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Message merges an active message with its optional shadow counterpart into
// a fresh DescriptorProto. Beyond the reserved-name recovery also done for
// enums, recovered fields that belonged to a oneof in the shadow are
// reattached to the target's same-named oneof group (created from the shadow
// declaration if absent) and spliced next to their live siblings so oneof
// members stay contiguous. Nested message and enum types are merged
// recursively; shadow-only nested types are preserved verbatim. Inputs are
// not mutated; ctx addresses this message inside the target file and is used
// to keep comment paths stable across field insertions.
func Message(
	ctx *TypeContext,
	active, shadow *descriptorpb.DescriptorProto,
	deps *DependencySet,
) (*descriptorpb.DescriptorProto, error) {
	target := proto.Clone(active).(*descriptorpb.DescriptorProto)
	if shadow == nil {
		return target, nil
	}

	shadowFields := make(map[string]*descriptorpb.FieldDescriptorProto, len(shadow.GetField()))
	for _, f := range shadow.GetField() {
		shadowFields[f.GetName()] = f
	}

	// Recovered plain fields can simply be appended; oneof members must be
	// reordered into their group, so they are held in per-group buckets.
	consumed := make(map[int32]bool)
	var extraSimple []*descriptorpb.FieldDescriptorProto
	extraOneof := make(map[int32][]*descriptorpb.FieldDescriptorProto)

	target.ReservedName = nil
	for _, n := range active.GetReservedName() {
		f, ok := shadowFields[HiddenName(n)]
		if !ok {
			target.ReservedName = append(target.ReservedName, n)
			continue
		}
		addFieldRecoveryDependencies(deps, f)
		consumed[f.GetNumber()] = true
		recovered := proto.Clone(f).(*descriptorpb.FieldDescriptorProto)
		// The field takes back its pre-deprecation name.
		recovered.Name = proto.String(n)
		if recovered.OneofIndex != nil {
			idx := resolveOneofIndex(target, shadow, recovered.GetOneofIndex())
			recovered.OneofIndex = proto.Int32(idx)
			extraOneof[idx] = append(extraOneof[idx], recovered)
		} else {
			extraSimple = append(extraSimple, recovered)
		}
	}

	rebuildFields(ctx, target, extraSimple, extraOneof)

	ranges, err := adjustMessageReservedRanges(active.GetReservedRange(), consumed)
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", active.GetName(), err)
	}
	target.ReservedRange = ranges

	target.NestedType = nil
	activeIndex := 0
	for _, p := range pairByName(active.GetNestedType(), shadow.GetNestedType()) {
		if p.active == nil {
			// Entirely deprecated sub-messages survive verbatim so older
			// clients' serialized shapes remain representable.
			target.NestedType = append(target.NestedType, proto.Clone(p.shadow).(*descriptorpb.DescriptorProto))
			continue
		}
		merged, err := Message(ctx.ExtendNestedMessage(activeIndex), p.active, p.shadow, deps)
		if err != nil {
			return nil, err
		}
		target.NestedType = append(target.NestedType, merged)
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
			return nil, err
		}
		target.EnumType = append(target.EnumType, merged)
	}
	return target, nil
}

// resolveOneofIndex maps a shadow oneof index onto the target's oneof group
// of the same name, appending a copy of the shadow declaration when the
// target has no such group.
func resolveOneofIndex(target, shadow *descriptorpb.DescriptorProto, shadowIndex int32) int32 {
	name := shadow.GetOneofDecl()[shadowIndex].GetName()
	for i, decl := range target.GetOneofDecl() {
		if decl.GetName() == name {
			return int32(i)
		}
	}
	decl := proto.Clone(shadow.GetOneofDecl()[shadowIndex]).(*descriptorpb.OneofDescriptorProto)
	target.OneofDecl = append(target.OneofDecl, decl)
	return int32(len(target.OneofDecl) - 1)
}

// rebuildFields rewrites target's field list, splicing each oneof overflow
// bucket immediately after the run of live fields with the same oneof index.
// Every mid-list splice of k fields at position p shifts recorded comment
// paths addressing field index >= p by +k. Plain recovered fields and
// buckets for shadow-only oneofs are appended at the end; those carry no
// comments, so no shift is needed there.
func rebuildFields(
	ctx *TypeContext,
	target *descriptorpb.DescriptorProto,
	extraSimple []*descriptorpb.FieldDescriptorProto,
	extraOneof map[int32][]*descriptorpb.FieldDescriptorProto,
) {
	existing := target.Field
	target.Field = nil

	splice := func(oneofIndex int32, pivot int) int {
		bucket := extraOneof[oneofIndex]
		delete(extraOneof, oneofIndex)
		if len(bucket) == 0 {
			return 0
		}
		target.Field = append(target.Field, bucket...)
		if pivot >= 0 {
			ctx.AdjustFieldPaths(pivot, len(bucket))
		}
		return len(bucket)
	}

	var current *int32
	index := 0
	for _, f := range existing {
		if current != nil {
			next := f.OneofIndex
			// Leaving the current oneof run: drop in its recovered members
			// before the next field.
			if next == nil || *next != *current {
				index += splice(*current, index)
				current = next
			}
		} else if f.OneofIndex != nil {
			current = f.OneofIndex
		}
		target.Field = append(target.Field, f)
		index++
	}
	if current != nil {
		splice(*current, -1)
	}

	target.Field = append(target.Field, extraSimple...)

	remaining := make([]int32, 0, len(extraOneof))
	for idx := range extraOneof {
		remaining = append(remaining, idx)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	for _, idx := range remaining {
		target.Field = append(target.Field, extraOneof[idx]...)
	}
}
