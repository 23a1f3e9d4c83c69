package cfg

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// NameSet is a set of symbol names. It remembers the order in which names
// have been added, which is the order in which a fixpoint computation
// discovered them.
type NameSet struct {
	set *linkedhashset.Set
}

func newNameSet(names ...string) *NameSet {
	s := &NameSet{set: linkedhashset.New()}
	for _, n := range names {
		s.set.Add(n)
	}
	return s
}

// add inserts name and reports whether it has not been present before.
func (s *NameSet) add(name string) bool {
	if s.set.Contains(name) {
		return false
	}
	s.set.Add(name)
	return true
}

// Contains checks if name is an element of s. A nil set is empty.
func (s *NameSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(name)
}

// Len returns the number of names in s.
func (s *NameSet) Len() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

// Names returns the names of s in insertion order.
func (s *NameSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, s.set.Size())
	for _, v := range s.set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// String prints s as {a, b, c}.
func (s *NameSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}
