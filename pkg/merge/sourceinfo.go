package merge

import (
	"google.golang.org/protobuf/types/descriptorpb"
)

// Field numbers from descriptor.proto used to build SourceCodeInfo paths.
const (
	fileMessageTypeTag   = 4 // FileDescriptorProto.message_type
	messageFieldTag      = 2 // DescriptorProto.field
	messageNestedTypeTag = 3 // DescriptorProto.nested_type
)

// TypeContext addresses one node in the target file's schema tree and
// carries the file's source-location table so comment paths can be fixed up
// in place as fields are spliced into the middle of a field list. One
// context is built per file merge and extended down the recursion; the
// underlying SourceCodeInfo belongs exclusively to the target file.
type TypeContext struct {
	info *descriptorpb.SourceCodeInfo
	path []int32
}

// NewFileContext creates the root context for a target file. The file's
// SourceCodeInfo is mutated in place by AdjustFieldPaths.
func NewFileContext(file *descriptorpb.FileDescriptorProto) *TypeContext {
	return &TypeContext{info: file.GetSourceCodeInfo()}
}

func (c *TypeContext) extend(tag, index int32) *TypeContext {
	path := make([]int32, 0, len(c.path)+2)
	path = append(path, c.path...)
	path = append(path, tag, index)
	return &TypeContext{info: c.info, path: path}
}

// ExtendMessage addresses the index-th top-level message of the file.
func (c *TypeContext) ExtendMessage(index int) *TypeContext {
	return c.extend(fileMessageTypeTag, int32(index))
}

// ExtendNestedMessage addresses the index-th nested message of the current
// message.
func (c *TypeContext) ExtendNestedMessage(index int) *TypeContext {
	return c.extend(messageNestedTypeTag, int32(index))
}

// Path returns a copy of the SourceCodeInfo path addressing this node.
func (c *TypeContext) Path() []int32 {
	return append([]int32(nil), c.path...)
}

// AdjustFieldPaths shifts every recorded location that addresses a field of
// the current message at list index >= pivot by shift, keeping comments
// attached to the right field after insertions. Linear in the location table
// per call, so quadratic over a whole merge in the worst case; recoveries
// are rare enough that this has never mattered.
func (c *TypeContext) AdjustFieldPaths(pivot, shift int) {
	if c.info == nil {
		return
	}
	prefix := make([]int32, 0, len(c.path)+1)
	prefix = append(prefix, c.path...)
	prefix = append(prefix, messageFieldTag)
	for _, loc := range c.info.GetLocation() {
		if !hasPathPrefix(prefix, loc.GetPath()) {
			continue
		}
		// The component right after the prefix is the field list index.
		i := len(prefix)
		if i < len(loc.Path) && loc.Path[i] >= int32(pivot) {
			loc.Path[i] += int32(shift)
		}
	}
}

func hasPathPrefix(prefix, path []int32) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if prefix[i] != path[i] {
			return false
		}
	}
	return true
}
