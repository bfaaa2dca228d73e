package tile

// Counts is a frequency table over the 34 tile kinds. It is a plain
// value; computations that derive one own it outright and may mutate it
// freely. The table itself enforces no per-kind ceiling.
type Counts [NumKinds]int

// Add increments the count for a kind.
func (c *Counts) Add(k Kind) {
	c[k]++
}

// CountOf returns the count for a kind.
func (c Counts) CountOf(k Kind) int {
	return c[k]
}

// Total returns the number of tiles in the table.
func (c Counts) Total() int {
	n := 0
	for i := range c {
		n += c[i]
	}
	return n
}

// Kinds returns the number of distinct kinds present.
func (c Counts) Kinds() int {
	n := 0
	for i := range c {
		if c[i] > 0 {
			n++
		}
	}
	return n
}
