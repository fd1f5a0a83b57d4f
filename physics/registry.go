package physics

// Registry maps bodies to the listeners interested in their contacts
// A machine builds a fresh Registry on every reset
type Registry struct {
	listeners map[*Body]Listener
	begins    int
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{listeners: make(map[*Body]Listener)}
}

// Add registers l for contacts involving body; a later Add for the same body replaces it
func (r *Registry) Add(body *Body, l Listener) {
	r.listeners[body] = l
}

// Remove drops the listener for body
func (r *Registry) Remove(body *Body) {
	delete(r.listeners, body)
}

// Lookup returns the listener registered for body
func (r *Registry) Lookup(body *Body) (Listener, bool) {
	l, ok := r.listeners[body]
	return l, ok
}

// Len returns the number of registered bodies
func (r *Registry) Len() int {
	return len(r.listeners)
}

// Begins returns the total BeginContact callbacks dispatched
func (r *Registry) Begins() int {
	return r.begins
}

// each visits listeners for body A then body B; a listener owning both bodies is called once
func (r *Registry) each(c Contact, fn func(Listener)) {
	a, b := c.BodyA(), c.BodyB()
	la, okA := r.listeners[a]
	if okA {
		fn(la)
	}
	if lb, ok := r.listeners[b]; ok && !(okA && lb == la) {
		fn(lb)
	}
}

func (r *Registry) BeginContact(c Contact) {
	r.begins++
	r.each(c, func(l Listener) { l.BeginContact(c) })
}

func (r *Registry) EndContact(c Contact) {
	r.each(c, func(l Listener) { l.EndContact(c) })
}

func (r *Registry) PreSolve(c Contact) {
	r.each(c, func(l Listener) { l.PreSolve(c) })
}
