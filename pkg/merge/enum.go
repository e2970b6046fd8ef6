package merge

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// sentinelValueName is the placeholder the shadow generator emits when an
// enum's default value was deprecated. It always sits at number zero and
// inherits the shadow value's full definition during merge.
const sentinelValueName = "DEPRECATED_AND_UNAVAILABLE_DO_NOT_USE"

// Enum merges an active enum with its optional shadow counterpart into a
// fresh EnumDescriptorProto. Reserved names with a hidden counterpart in the
// shadow are recovered as concrete values and their numbers removed from the
// reserved ranges; the rest pass through unchanged. Inputs are not mutated.
func Enum(
	active, shadow *descriptorpb.EnumDescriptorProto,
	deps *DependencySet,
) (*descriptorpb.EnumDescriptorProto, error) {
	target := proto.Clone(active).(*descriptorpb.EnumDescriptorProto)
	if shadow == nil {
		return target, nil
	}

	shadowValues := make(map[string]*descriptorpb.EnumValueDescriptorProto, len(shadow.GetValue()))
	for _, v := range shadow.GetValue() {
		shadowValues[v.GetName()] = v
	}

	consumed := make(map[int32]bool)
	target.ReservedName = nil
	for _, n := range active.GetReservedName() {
		v, ok := shadowValues[HiddenName(n)]
		if !ok {
			target.ReservedName = append(target.ReservedName, n)
			continue
		}
		addEnumValueRecoveryDependencies(deps, v)
		consumed[v.GetNumber()] = true
		recovered := proto.Clone(v).(*descriptorpb.EnumValueDescriptorProto)
		// The value takes back its pre-deprecation name.
		recovered.Name = proto.String(n)
		target.Value = append(target.Value, recovered)
	}

	ranges, err := adjustEnumReservedRanges(active.GetReservedRange(), consumed)
	if err != nil {
		return nil, fmt.Errorf("enum %s: %w", active.GetName(), err)
	}
	target.ReservedRange = ranges

	// A deprecated default value leaves the sentinel behind in the active
	// enum; it takes over the richer shadow definition at the same number.
	for i, tv := range target.GetValue() {
		if tv.GetName() != sentinelValueName {
			continue
		}
		for _, sv := range shadow.GetValue() {
			if sv.GetNumber() != tv.GetNumber() {
				continue
			}
			if sv.GetNumber() != 0 {
				return nil, fmt.Errorf("enum %s: sentinel %s matched shadow value %s at nonzero number %d",
					active.GetName(), sentinelValueName, sv.GetName(), sv.GetNumber())
			}
			target.Value[i] = proto.Clone(sv).(*descriptorpb.EnumValueDescriptorProto)
		}
	}
	return target, nil
}
