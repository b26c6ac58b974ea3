package state

import "github.com/soypat/rksolve/internal/face"

func (s *State) xCreateIfNotExist(sym Symbol) {
	if _, ok := s.varmap[sym]; !ok {
		s.x = append(s.x, 0)
		s.varmap[sym] = len(s.x) - 1
	}
}

func throwf(format string, args ...interface{}) {
	face.Throwf(format, args...)
}

func (s *State) has(sym Symbol) bool {
	_, ok := s.varmap[sym]
	return ok
}
