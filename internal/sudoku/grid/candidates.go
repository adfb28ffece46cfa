package grid

// Candidates is a bitmask of possible digits (1..side) for a cell, the same
// layout as the teacher's techniques.Candidates (bit 0 unused, bit d set
// means digit d is a candidate), widened to uint32 so that digit 16 fits.
// Unlike the teacher's type this one is not bound to a fixed global side:
// every method here takes the grid's side explicitly, since this module's
// Grid ranges over N ∈ {4, 9} rather than a single hardcoded 9.
type Candidates uint32

// NewCandidates builds a Candidates bitmask from a slice of digits.
func NewCandidates(digits []int, side int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d, side)
	}
	return c
}

// AllCandidates returns a Candidates with every digit 1..side set.
func AllCandidates(side int) Candidates {
	var c Candidates
	for d := 1; d <= side; d++ {
		c = c.Set(d, side)
	}
	return c
}

// Has reports whether digit is set.
func (c Candidates) Has(digit, side int) bool {
	if digit < 1 || digit > side {
		return false
	}
	return c&(1<<uint(digit)) != 0
}

// Set returns c with digit added.
func (c Candidates) Set(digit, side int) Candidates {
	if digit < 1 || digit > side {
		return c
	}
	return c | (1 << uint(digit))
}

// Clear returns c with digit removed.
func (c Candidates) Clear(digit, side int) Candidates {
	if digit < 1 || digit > side {
		return c
	}
	return c &^ (1 << uint(digit))
}

// Count returns the number of set digits.
func (c Candidates) Count() int {
	count := 0
	for v := c; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// Only returns the single digit set in c, if c is a singleton.
func (c Candidates) Only(side int) (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for d := 1; d <= side; d++ {
		if c.Has(d, side) {
			return d, true
		}
	}
	return 0, false
}

// ToSlice returns the set digits in ascending order.
func (c Candidates) ToSlice(side int) []int {
	var result []int
	for d := 1; d <= side; d++ {
		if c.Has(d, side) {
			result = append(result, d)
		}
	}
	return result
}

// IsEmpty reports whether no digit is set.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Intersect returns digits present in both c and other.
func (c Candidates) Intersect(other Candidates) Candidates {
	return c & other
}

// Union returns digits present in either c or other.
func (c Candidates) Union(other Candidates) Candidates {
	return c | other
}

// Subtract returns digits in c that are not in other.
func (c Candidates) Subtract(other Candidates) Candidates {
	return c &^ other
}

// Equals reports whether the two bitmasks carry the same digits.
func (c Candidates) Equals(other Candidates) bool {
	return c == other
}
