// Package surface provides in-process stand-ins for the host controls the
// controller talks to: a submit trigger, a text entry and a text label.
package surface

// Form is a submit trigger with removable listeners. The zero value is ready to use.
type Form struct {
	listeners map[int]func()
	order     []int
	seq       int
}

func NewForm() *Form { return &Form{listeners: map[int]func(){}} }

// AddSubmitListener registers fn and returns a function that removes it.
// Calling the remover more than once is harmless.
func (f *Form) AddSubmitListener(fn func()) (remove func()) {
	if f.listeners == nil {
		f.listeners = map[int]func(){}
	}
	f.seq++
	key := f.seq
	f.listeners[key] = fn
	f.order = append(f.order, key)
	return func() {
		if _, ok := f.listeners[key]; !ok {
			return
		}
		delete(f.listeners, key)
		for i, k := range f.order {
			if k == key {
				f.order = append(f.order[:i:i], f.order[i+1:]...)
				break
			}
		}
	}
}

// Submit fires every listener in registration order and reports how many ran.
func (f *Form) Submit() int {
	keys := append([]int(nil), f.order...)
	n := 0
	for _, k := range keys {
		if fn, ok := f.listeners[k]; ok {
			fn()
			n++
		}
	}
	return n
}

func (f *Form) Listeners() int { return len(f.order) }

// Input is a single line text entry.
type Input struct {
	value string
}

func (i *Input) Value() string     { return i.value }
func (i *Input) SetValue(v string) { i.value = v }

// Label displays one line of text.
type Label struct {
	text string
}

func (l *Label) Text() string     { return l.text }
func (l *Label) SetText(s string) { l.text = s }
