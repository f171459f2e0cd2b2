// Package availability derives advisory availability for a resource: which
// parts are blocked by which bookings, how recurring bookings expand, and how
// a day of bookings is laid out on a timeline.
//
// Everything here is a pure function of its inputs. The results are a
// best-effort visualization and never a lock: conflicts are prevented for
// real inside the booking repository transaction.
package availability

// Part is a bookable subdivision of a resource. ParentID, when set, refers to
// another part of the same resource.
type Part struct {
	ID         int    `json:"id"`
	ResourceID int    `json:"resource_id"`
	Name       string `json:"name"`
	ParentID   *int   `json:"parent_id,omitempty"`
}

// Hierarchy is a read-only view over the parts of one resource.
type Hierarchy struct {
	resourceID int
	parts      []Part
	byID       map[int]Part
	parent     map[int]int
	children   map[int][]Part
}

// NewHierarchy builds the view for resourceID. Parts of other resources are
// ignored and a parent reference that cannot be resolved within the resource
// is treated as absent.
func NewHierarchy(resourceID int, parts []Part) *Hierarchy {
	h := &Hierarchy{
		resourceID: resourceID,
		byID:       make(map[int]Part, len(parts)),
		parent:     make(map[int]int),
		children:   make(map[int][]Part),
	}

	for _, p := range parts {
		if p.ResourceID != resourceID {
			continue
		}
		if _, dup := h.byID[p.ID]; dup {
			continue
		}
		h.byID[p.ID] = p
		h.parts = append(h.parts, p)
	}

	for _, p := range h.parts {
		if p.ParentID == nil || *p.ParentID == p.ID {
			continue
		}
		if _, ok := h.byID[*p.ParentID]; !ok {
			continue
		}
		h.parent[p.ID] = *p.ParentID
		h.children[*p.ParentID] = append(h.children[*p.ParentID], p)
	}

	return h
}

// ResourceID returns the resource the hierarchy was built for.
func (h *Hierarchy) ResourceID() int {
	return h.resourceID
}

// Parts returns the parts in the order they were supplied.
func (h *Hierarchy) Parts() []Part {
	out := make([]Part, len(h.parts))
	copy(out, h.parts)
	return out
}

func (h *Hierarchy) Part(id int) (Part, bool) {
	p, ok := h.byID[id]
	return p, ok
}

// Children returns the direct children of id.
func (h *Hierarchy) Children(id int) []Part {
	kids := h.children[id]
	out := make([]Part, len(kids))
	copy(out, kids)
	return out
}

// Parent returns the resolved parent of id, if any.
func (h *Hierarchy) Parent(id int) (Part, bool) {
	pid, ok := h.parent[id]
	if !ok {
		return Part{}, false
	}
	return h.byID[pid], true
}

// Descendants returns every part below id, breadth first.
func (h *Hierarchy) Descendants(id int) []Part {
	var out []Part
	seen := map[int]bool{id: true}
	queue := []int{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range h.children[cur] {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			out = append(out, child)
			queue = append(queue, child.ID)
		}
	}
	return out
}

// Ancestors returns the chain of parents of id, nearest first.
func (h *Hierarchy) Ancestors(id int) []Part {
	var out []Part
	seen := map[int]bool{id: true}
	cur := id
	for {
		pid, ok := h.parent[cur]
		if !ok || seen[pid] {
			return out
		}
		seen[pid] = true
		out = append(out, h.byID[pid])
		cur = pid
	}
}
