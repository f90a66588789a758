package graph

// Registry assigns dense integer ids to names in first-seen order.
// The zero value is ready to use.
type Registry struct {
	ids   map[string]int
	names []string
}

// ID returns the id for name, registering it if needed.
func (r *Registry) ID(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	if r.ids == nil {
		r.ids = make(map[string]int)
	}
	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

// Lookup returns the id for name without registering it.
func (r *Registry) Lookup(name string) (int, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name returns the name registered under id.
func (r *Registry) Name(id int) string { return r.names[id] }

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.names) }

// Names returns all names in id order. The slice must not be modified.
func (r *Registry) Names() []string { return r.names }
