package selection

import (
	"icsselect/internal/domain"
	"icsselect/internal/eventbus"
)

// Service owns the inclusion flags. Widgets never keep their own copy; they
// read through IsSelected and write through Toggle and SetAll.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a service for size events, all selected
func NewService(bus eventbus.EventBus, size int) *Service {
	flags := make([]bool, size)
	for i := range flags {
		flags[i] = true
	}
	return &Service{
		state: &State{
			Flags: flags,
		},
		bus: bus,
	}
}

// Toggle flips the flag at index
func (s *Service) Toggle(index int) error {
	if index < 0 || index >= len(s.state.Flags) {
		return &IndexError{Index: index, Len: len(s.state.Flags)}
	}

	s.state.Flags[index] = !s.state.Flags[index]

	s.publish([]int{index}, s.state.Flags[index])
	return nil
}

// SetAll sets every flag inside page to value. Flags outside the page are
// left alone.
func (s *Service) SetAll(page domain.Page, value bool) error {
	if page.Start < 0 || page.Start > page.End {
		return &IndexError{Index: page.Start, Len: len(s.state.Flags)}
	}
	if page.End > len(s.state.Flags) {
		return &IndexError{Index: page.End - 1, Len: len(s.state.Flags)}
	}

	var changed []int
	for i := page.Start; i < page.End; i++ {
		if s.state.Flags[i] != value {
			s.state.Flags[i] = value
			changed = append(changed, i)
		}
	}

	if len(changed) > 0 {
		s.publish(changed, value)
	}
	return nil
}

// IsSelected reports whether the event at index is included
func (s *Service) IsSelected(index int) bool {
	return index >= 0 && index < len(s.state.Flags) && s.state.Flags[index]
}

// Len returns the number of flags, which always equals the store length
func (s *Service) Len() int {
	return len(s.state.Flags)
}

// Count returns the number of selected events
func (s *Service) Count() int {
	n := 0
	for _, f := range s.state.Flags {
		if f {
			n++
		}
	}
	return n
}

// CountIn returns the number of selected events inside page
func (s *Service) CountIn(page domain.Page) int {
	n := 0
	for i := max(page.Start, 0); i < page.End && i < len(s.state.Flags); i++ {
		if s.state.Flags[i] {
			n++
		}
	}
	return n
}

// Flags returns a copy of all flags
func (s *Service) Flags() []bool {
	return append([]bool(nil), s.state.Flags...)
}

func (s *Service) publish(indices []int, value bool) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Indices:  indices,
		Selected: value,
		Total:    s.Count(),
	})
}
