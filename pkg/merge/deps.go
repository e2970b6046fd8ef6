package merge

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"protoshadow/pkg/annotations"
)

// Imports appended when a recovered member needs them.
const (
	deprecationImport = "envoy/annotations/deprecation.proto"
	structImport      = "google/protobuf/struct.proto"
)

// DependencySet accumulates a file's import list during one merge pass. It
// preserves insertion order and drops duplicates, so the merged file keeps
// the active file's imports first and gains recovery imports at the end.
type DependencySet struct {
	names []string
	seen  map[string]struct{}
}

// NewDependencySet creates a set seeded with the file's existing imports.
func NewDependencySet(initial []string) *DependencySet {
	d := &DependencySet{
		names: make([]string, 0, len(initial)),
		seen:  make(map[string]struct{}, len(initial)),
	}
	for _, name := range initial {
		d.Add(name)
	}
	return d
}

// Add records an import, reporting whether it was newly added.
func (d *DependencySet) Add(name string) bool {
	if _, ok := d.seen[name]; ok {
		return false
	}
	d.seen[name] = struct{}{}
	d.names = append(d.names, name)
	return true
}

// Names returns the accumulated imports in insertion order.
func (d *DependencySet) Names() []string {
	return d.names
}

// addFieldRecoveryDependencies records the imports a recovered field pulls in:
// the deprecation annotation proto for disallowed-by-default fields and
// struct.proto for google.protobuf.Struct typed fields.
func addFieldRecoveryDependencies(deps *DependencySet, f *descriptorpb.FieldDescriptorProto) {
	if annotations.DisallowedByDefault(f) {
		deps.Add(deprecationImport)
	}
	if annotations.IsStructField(f) {
		deps.Add(structImport)
	}
}

// addEnumValueRecoveryDependencies records the imports a recovered enum value
// pulls in.
func addEnumValueRecoveryDependencies(deps *DependencySet, v *descriptorpb.EnumValueDescriptorProto) {
	if annotations.DisallowedByDefaultEnum(v) {
		deps.Add(deprecationImport)
	}
}
