package brain

// Variables holds the values bound to variable names. The zero value is not
// usable; a Brain creates its own store.
type Variables struct {
	values map[string]float64
}

func newVariables() *Variables {
	return &Variables{values: make(map[string]float64)}
}

func (v *Variables) Get(name string) (float64, bool) {
	val, ok := v.values[name]
	return val, ok
}

func (v *Variables) Set(name string, value float64) {
	v.values[name] = value
}

func (v *Variables) Delete(name string) {
	delete(v.values, name)
}

func (v *Variables) Clear() {
	v.values = make(map[string]float64)
}

func (v *Variables) Len() int {
	return len(v.values)
}

// Snapshot returns a copy of the current bindings.
func (v *Variables) Snapshot() map[string]float64 {
	m := make(map[string]float64, len(v.values))
	for k, val := range v.values {
		m[k] = val
	}
	return m
}
