package lang

import "sort"

// Binding is a name's mutability flag together with its current value.
type Binding struct {
	Mutable bool
	Value   Value
}

// Env implements a lexical environment chain. A child frame only links to
// its parent for lookup; it never outlives the block that created it.
type Env struct {
	parent *Env
	values map[string]Binding
}

// NewEnv creates an environment with optional parent.
func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		values: make(map[string]Binding),
	}
}

// Child returns a new frame enclosed by e.
func (e *Env) Child() *Env {
	return NewEnv(e)
}

// Define binds name in the current frame, replacing any binding of the
// same name there. Callers reject redeclaration via Contains first.
func (e *Env) Define(name string, mutable bool, val Value) {
	e.values[name] = Binding{Mutable: mutable, Value: val}
}

// Get retrieves a binding, searching parents if necessary.
func (e *Env) Get(name string) (Binding, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.values[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Assign replaces the value of the nearest binding of name, keeping its
// mutability flag. It reports false when no frame holds the name.
func (e *Env) Assign(name string, val Value) bool {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.values[name]; ok {
			b.Value = val
			env.values[name] = b
			return true
		}
	}
	return false
}

// Contains reports whether name is bound in this frame, ignoring parents.
func (e *Env) Contains(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Names lists the names bound in this frame in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parent returns the parent environment.
func (e *Env) Parent() *Env {
	return e.parent
}
