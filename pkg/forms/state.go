package forms

import "fmt"

// PageState names the submission lifecycle of a form-driven page.
type PageState int

const (
	StateForm PageState = iota
	StateLoading
	StateSuccess
	StateError
)

func (s PageState) String() string {
	switch s {
	case StateForm:
		return "Form"
	case StateLoading:
		return "Loading"
	case StateSuccess:
		return "Success"
	case StateError:
		return "Error"
	}
	return fmt.Sprintf("PageState(%d)", int(s))
}

// allowed transitions: Form -> Loading, Loading -> Success | Error,
// Success | Error -> Form (reset).
var allowedTransitions = map[PageState][]PageState{
	StateForm:    {StateLoading},
	StateLoading: {StateSuccess, StateError},
	StateSuccess: {StateForm},
	StateError:   {StateForm},
}

// Page is an explicit state container for one form page. It refuses illegal
// transitions instead of mutating state.
type Page struct {
	state   PageState
	message string
}

func NewPage() *Page {
	return &Page{state: StateForm}
}

func (p *Page) State() PageState {
	return p.state
}

// Message carries the success response or error text of a terminal state.
func (p *Page) Message() string {
	return p.message
}

func (p *Page) canTransition(to PageState) bool {
	for _, next := range allowedTransitions[p.state] {
		if next == to {
			return true
		}
	}
	return false
}

func (p *Page) transition(to PageState, message string) error {
	if !p.canTransition(to) {
		return fmt.Errorf("illegal transition %s -> %s", p.state, to)
	}

	p.state = to
	p.message = message
	return nil
}

// Submit moves the page into Loading.
func (p *Page) Submit() error {
	return p.transition(StateLoading, "")
}

// Succeed records the backend's success message.
func (p *Page) Succeed(message string) error {
	return p.transition(StateSuccess, message)
}

// Fail records the failure text.
func (p *Page) Fail(message string) error {
	return p.transition(StateError, message)
}

// Reset returns a terminal state to the editable form.
func (p *Page) Reset() error {
	return p.transition(StateForm, "")
}
