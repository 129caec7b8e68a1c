package canopy

// idSet is an open-addressed set of node IDs with linear probing. Slot value
// zero marks an empty slot, so ID zero cannot be stored.
type idSet struct {
	slots []uint32
	size  int
	limit int // maximum number of stored IDs, kept below len(slots)
}

func newIDSet(limit int) *idSet {
	capacity := 1
	for capacity < 2*limit {
		capacity <<= 1
	}
	if capacity <= limit {
		capacity = limit + 1
	}
	return &idSet{slots: make([]uint32, capacity), limit: limit}
}

func splitmix64(v uint64) uint64 {
	z := v + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (s *idSet) home(id uint32) int {
	return int(splitmix64(uint64(id)) % uint64(len(s.slots)))
}

// insertResult tells the caller why an insert did nothing.
type insertResult uint8

const (
	inserted insertResult = iota
	alreadyPresent
	setFull
)

// insert reports a duplicate even when the set is at its limit.
func (s *idSet) insert(id uint32) insertResult {
	i := s.home(id)
	for s.slots[i] != 0 {
		if s.slots[i] == id {
			return alreadyPresent
		}
		i = (i + 1) % len(s.slots)
	}
	if s.size >= s.limit {
		return setFull
	}
	s.slots[i] = id
	s.size++
	return inserted
}

func (s *idSet) has(id uint32) bool {
	if id == 0 {
		return false
	}
	for i := s.home(id); s.slots[i] != 0; i = (i + 1) % len(s.slots) {
		if s.slots[i] == id {
			return true
		}
	}
	return false
}

func (s *idSet) clear() {
	clear(s.slots)
	s.size = 0
}
