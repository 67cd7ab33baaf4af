package model

import (
	"sort"
	"strings"
)

// ProtocolSet is a collection of unique protocols
type ProtocolSet struct {
	elements map[Protocol]struct{}
}

// NewProtocolSet creates a set holding the given protocols
func NewProtocolSet(protocols ...Protocol) *ProtocolSet {
	s := &ProtocolSet{elements: make(map[Protocol]struct{}, len(protocols))}
	for _, p := range protocols {
		s.Add(p)
	}
	return s
}

// Add inserts a protocol into the set
func (s *ProtocolSet) Add(p Protocol) {
	if s.elements == nil {
		s.elements = make(map[Protocol]struct{})
	}
	s.elements[p] = struct{}{}
}

// Contains checks if a protocol is in the set
func (s *ProtocolSet) Contains(p Protocol) bool {
	_, found := s.elements[p]
	return found
}

// Size returns the number of protocols in the set
func (s *ProtocolSet) Size() int {
	return len(s.elements)
}

// List returns the protocols sorted by name
func (s *ProtocolSet) List() []Protocol {
	list := make([]Protocol, 0, len(s.elements))
	for p := range s.elements {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// ToString joins the sorted protocol names with commas
func (s *ProtocolSet) ToString() string {
	names := make([]string, 0, len(s.elements))
	for _, p := range s.List() {
		names = append(names, string(p))
	}
	return strings.Join(names, ",")
}
