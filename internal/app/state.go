package app

// State is the transient routing state owned by the Router and shared by
// pointer with the list-mode controller and scroll animator.
type State struct {
	List   ListModeState
	Scroll *ScrollAnimation
}

func NewState() *State {
	return &State{List: ListModeState{SelectedIndex: -1}}
}
