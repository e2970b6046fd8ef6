package merge

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// ErrNonSingletonRange is returned when a reserved range spans more than one
// number. The shadow generation tooling only ever writes singleton
// reservations, so a wider range is a contract breach in the input, not a
// recoverable condition.
var ErrNonSingletonRange = errors.New("reserved range is not a singleton")

// singletonRange reports whether a reserved range covers exactly one number.
// Message ranges are end-exclusive and enum ranges end-inclusive, so both
// encodings are accepted.
func singletonRange(start, end int32) bool {
	return start == end || end == start+1
}

// adjustMessageReservedRanges returns the message reserved ranges minus the
// entries whose numbers were consumed by recovered fields, in original order.
func adjustMessageReservedRanges(
	ranges []*descriptorpb.DescriptorProto_ReservedRange,
	consumed map[int32]bool,
) ([]*descriptorpb.DescriptorProto_ReservedRange, error) {
	var out []*descriptorpb.DescriptorProto_ReservedRange
	for _, rr := range ranges {
		if !singletonRange(rr.GetStart(), rr.GetEnd()) {
			return nil, fmt.Errorf("%w: [%d, %d)", ErrNonSingletonRange, rr.GetStart(), rr.GetEnd())
		}
		if consumed[rr.GetStart()] {
			continue
		}
		out = append(out, proto.Clone(rr).(*descriptorpb.DescriptorProto_ReservedRange))
	}
	return out, nil
}

// adjustEnumReservedRanges is the enum variant of adjustMessageReservedRanges.
func adjustEnumReservedRanges(
	ranges []*descriptorpb.EnumDescriptorProto_EnumReservedRange,
	consumed map[int32]bool,
) ([]*descriptorpb.EnumDescriptorProto_EnumReservedRange, error) {
	var out []*descriptorpb.EnumDescriptorProto_EnumReservedRange
	for _, rr := range ranges {
		if !singletonRange(rr.GetStart(), rr.GetEnd()) {
			return nil, fmt.Errorf("%w: [%d, %d]", ErrNonSingletonRange, rr.GetStart(), rr.GetEnd())
		}
		if consumed[rr.GetStart()] {
			continue
		}
		out = append(out, proto.Clone(rr).(*descriptorpb.EnumDescriptorProto_EnumReservedRange))
	}
	return out, nil
}
