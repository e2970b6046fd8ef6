package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencySet_PreservesOrderAndDedupes(t *testing.T) {
	deps := NewDependencySet([]string{"a.proto", "b.proto"})

	assert.True(t, deps.Add("c.proto"))
	assert.False(t, deps.Add("a.proto"))
	assert.False(t, deps.Add("c.proto"))

	assert.Equal(t, []string{"a.proto", "b.proto", "c.proto"}, deps.Names())
}

func TestDependencySet_Empty(t *testing.T) {
	deps := NewDependencySet(nil)
	assert.Empty(t, deps.Names())

	assert.True(t, deps.Add(deprecationImport))
	assert.Equal(t, []string{"envoy/annotations/deprecation.proto"}, deps.Names())
}

func TestDependencySet_SeededDuplicates(t *testing.T) {
	deps := NewDependencySet([]string{"a.proto", "a.proto"})
	assert.Equal(t, []string{"a.proto"}, deps.Names())
}
