package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func partNames(parts []Part) []string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.Name)
	}
	return names
}

func TestHierarchy_ParentAndChildren(t *testing.T) {
	h := NewHierarchy(1, []Part{
		{ID: 10, ResourceID: 1, Name: "Main Hall"},
		{ID: 11, ResourceID: 1, Name: "Half A", ParentID: intPtr(10)},
		{ID: 12, ResourceID: 1, Name: "Half B", ParentID: intPtr(10)},
		{ID: 20, ResourceID: 1, Name: "Court 1"},
	})

	assert.Equal(t, []string{"Half A", "Half B"}, partNames(h.Children(10)))
	assert.Empty(t, h.Children(20))

	parent, ok := h.Parent(11)
	assert.True(t, ok)
	assert.Equal(t, "Main Hall", parent.Name)

	_, ok = h.Parent(10)
	assert.False(t, ok)

	assert.Equal(t, []string{"Main Hall", "Half A", "Half B", "Court 1"}, partNames(h.Parts()))
}

func TestHierarchy_MalformedReferencesAreIgnored(t *testing.T) {
	h := NewHierarchy(1, []Part{
		{ID: 10, ResourceID: 1, Name: "Dangling", ParentID: intPtr(99)},
		{ID: 11, ResourceID: 1, Name: "Self", ParentID: intPtr(11)},
		{ID: 30, ResourceID: 2, Name: "Other resource"},
		{ID: 12, ResourceID: 1, Name: "Cross", ParentID: intPtr(30)},
	})

	for _, id := range []int{10, 11, 12} {
		_, ok := h.Parent(id)
		assert.False(t, ok, "part %d", id)
	}
	_, ok := h.Part(30)
	assert.False(t, ok)
	assert.Empty(t, h.Children(30))
	assert.Empty(t, h.Children(99))
	assert.Len(t, h.Parts(), 3)
}

func TestHierarchy_DescendantsAndAncestors(t *testing.T) {
	h := NewHierarchy(1, []Part{
		{ID: 1, ResourceID: 1, Name: "Hall"},
		{ID: 2, ResourceID: 1, Name: "Half", ParentID: intPtr(1)},
		{ID: 3, ResourceID: 1, Name: "Quarter", ParentID: intPtr(2)},
	})

	assert.Equal(t, []string{"Half", "Quarter"}, partNames(h.Descendants(1)))
	assert.Equal(t, []string{"Half", "Hall"}, partNames(h.Ancestors(3)))
	assert.Empty(t, h.Ancestors(1))
}

func TestHierarchy_CycleDoesNotLoop(t *testing.T) {
	h := NewHierarchy(1, []Part{
		{ID: 1, ResourceID: 1, Name: "A", ParentID: intPtr(2)},
		{ID: 2, ResourceID: 1, Name: "B", ParentID: intPtr(1)},
	})

	assert.Equal(t, []string{"B"}, partNames(h.Ancestors(1)))
	assert.Equal(t, []string{"B"}, partNames(h.Descendants(1)))
}
