package app

// ModalStack is the ordered set of visible modal ids; the last id is the
// topmost modal.
type ModalStack struct {
	ids []string
}

// Push shows id on top. An id that is already visible moves to the top.
func (s *ModalStack) Push(id string) {
	if id == "" {
		return
	}
	s.Remove(id)
	s.ids = append(s.ids, id)
}

func (s *ModalStack) Remove(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (s *ModalStack) Top() (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[len(s.ids)-1], true
}

func (s *ModalStack) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *ModalStack) Len() int {
	return len(s.ids)
}

func (s *ModalStack) IDs() []string {
	return append([]string(nil), s.ids...)
}
