package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func TestAdjustMessageReservedRanges(t *testing.T) {
	ranges := []*descriptorpb.DescriptorProto_ReservedRange{
		msgReserved(2), msgReserved(5), msgReserved(9),
	}

	out, err := adjustMessageReservedRanges(ranges, map[int32]bool{5: true})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, int32(2), out[0].GetStart())
	assert.Equal(t, int32(9), out[1].GetStart())
}

func TestAdjustMessageReservedRanges_NoneConsumed(t *testing.T) {
	ranges := []*descriptorpb.DescriptorProto_ReservedRange{msgReserved(2)}

	out, err := adjustMessageReservedRanges(ranges, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)

	// The output holds copies, not aliases.
	out[0].Start = proto.Int32(100)
	assert.Equal(t, int32(2), ranges[0].GetStart())
}

func TestAdjustMessageReservedRanges_NonSingleton(t *testing.T) {
	ranges := []*descriptorpb.DescriptorProto_ReservedRange{
		{Start: proto.Int32(1), End: proto.Int32(5)},
	}

	_, err := adjustMessageReservedRanges(ranges, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonSingletonRange)
}

func TestAdjustEnumReservedRanges(t *testing.T) {
	tests := []struct {
		name      string
		ranges    []*descriptorpb.EnumDescriptorProto_EnumReservedRange
		consumed  map[int32]bool
		wantLen   int
		wantError bool
	}{
		{
			name:     "consumed singleton removed",
			ranges:   []*descriptorpb.EnumDescriptorProto_EnumReservedRange{enumReserved(1), enumReserved(3)},
			consumed: map[int32]bool{1: true},
			wantLen:  1,
		},
		{
			name: "end equal to start plus one accepted",
			ranges: []*descriptorpb.EnumDescriptorProto_EnumReservedRange{
				{Start: proto.Int32(4), End: proto.Int32(5)},
			},
			wantLen: 1,
		},
		{
			name: "wider range rejected",
			ranges: []*descriptorpb.EnumDescriptorProto_EnumReservedRange{
				{Start: proto.Int32(1), End: proto.Int32(10)},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := adjustEnumReservedRanges(tt.ranges, tt.consumed)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrNonSingletonRange)
				return
			}
			require.NoError(t, err)
			assert.Len(t, out, tt.wantLen)
		})
	}
}
