// Package ints defines a bit set of small non-negative ints.
package ints

const shift = 5 + (^uint(0) >> 32 & 1)
const wordSize = 1 << shift

// Set is a growable bit set. The zero value is an empty set.
type Set struct {
	chunks []uint
}

func NewSet(items ...int) *Set {
	s := &Set{}
	s.Add(items...)
	return s
}

func (s *Set) Add(items ...int) {
	for _, item := range items {
		index := item >> shift
		for index >= len(s.chunks) {
			s.chunks = append(s.chunks, 0)
		}
		s.chunks[index] |= 1 << (uint(item) & (wordSize - 1))
	}
}

func (s *Set) Remove(item int) {
	index := item >> shift
	if index < len(s.chunks) {
		s.chunks[index] &^= 1 << (uint(item) & (wordSize - 1))
	}
}

func (s *Set) Contains(item int) bool {
	index := item >> shift
	return index < len(s.chunks) && s.chunks[index]&(1<<(uint(item)&(wordSize-1))) != 0
}

func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}
	return true
}

func (s *Set) ToSlice() []int {
	result := make([]int, 0)
	for i, chunk := range s.chunks {
		for bit := 0; chunk != 0; bit++ {
			if chunk&1 != 0 {
				result = append(result, i<<shift+bit)
			}
			chunk >>= 1
		}
	}
	return result
}
