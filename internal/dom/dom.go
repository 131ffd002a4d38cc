// Package dom is the narrow slice of the browser document the page effects
// need. The js/wasm build binds it to the real document; domtest provides an
// in-memory one.
package dom

// Listener handles one dispatched event.
type Listener func(*Event)

// Element is a DOM element. Style properties use CSS names ("z-index").
type Element interface {
	SetStyle(prop, value string)
	Style(prop string) string
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetText(s string)
	Text() string
	AppendChild(child Element)
	// Remove detaches the element from its parent, if any.
	Remove()
	// Closest returns the nearest inclusive ancestor matching selector.
	Closest(selector string) (Element, bool)
	Same(other Element) bool
	// On registers l and returns a function that removes it.
	On(event string, l Listener) func()
}

// Document is the page root.
type Document interface {
	Query(selector string) (Element, bool)
	Create(tag string) Element
	Head() Element
	Body() Element
	On(event string, l Listener) func()
}

// Event is the subset of MouseEvent and KeyboardEvent that is read.
type Event struct {
	Type    string
	Key     string
	Code    string
	ClientX float64
	ClientY float64
	Target  Element

	prevented bool
	prevent   func()
}

func (e *Event) PreventDefault() {
	e.prevented = true
	if e.prevent != nil {
		e.prevent()
	}
}

func (e *Event) DefaultPrevented() bool { return e.prevented }

// KeyEvent builds a keydown event.
func KeyEvent(key, code string) *Event {
	return &Event{Type: "keydown", Key: key, Code: code}
}

// MouseEvent builds a pointer event of type typ at viewport x, y.
func MouseEvent(typ string, x, y float64) *Event {
	return &Event{Type: typ, ClientX: x, ClientY: y}
}
