package mode

import "maps"

// State maintains the values of all settable modes plus the save/restore
// stack used by DECMODESAVE / DECMODERESTORE.
type State struct {
	values   map[Mode]bool
	defaults map[Mode]bool
	saved    []map[Mode]bool
}

// Packed holds the default value for every known mode. This shouldn't be
// mutated directly but rather copied into a State.
var Packed = func() map[Mode]bool {
	packed := make(map[Mode]bool, len(entries))
	for _, m := range entries {
		packed[m] = m.Default
	}
	return packed
}()

func NewState(values map[Mode]bool, def map[Mode]bool) *State {
	state := &State{
		values:   values,
		defaults: def,
	}
	if values == nil {
		state.values = make(map[Mode]bool)
		maps.Copy(state.values, Packed)
	}
	if def == nil {
		state.defaults = Packed
	}
	return state
}

func (s *State) Set(m Mode, value bool) {
	s.values[m] = value
}

func (s *State) Get(m Mode) bool {
	return s.values[m]
}

func (s *State) Reset() {
	s.values = make(map[Mode]bool)
	maps.Copy(s.values, s.defaults)
	s.saved = nil
}

// Save pushes the current value of each given mode.
func (s *State) Save(modes []Mode) {
	frame := make(map[Mode]bool, len(modes))
	for _, m := range modes {
		frame[m] = s.values[m]
	}
	s.saved = append(s.saved, frame)
}

// Restore pops the most recent frame and reinstates the values it holds
// for the given modes. Modes absent from the frame keep their current
// value.
func (s *State) Restore(modes []Mode) {
	if len(s.saved) == 0 {
		return
	}
	frame := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	for _, m := range modes {
		if value, ok := frame[m]; ok {
			s.values[m] = value
		}
	}
}
