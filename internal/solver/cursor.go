package solver

// advance steps (r, c) to the next cell in row-major order,
// wrapping to the start of the next row past the last column.
// r == size signals the scan has passed the final cell.
func advance(r, c, size int) (int, int) {
	c++
	if c == size {
		c = 0
		r++
	}
	return r, c
}

// retreat is the exact inverse of advance for every position the scan
// can reach. The symmetry is what makes undo correct after a failed
// recursive branch.
func retreat(r, c, size int) (int, int) {
	c--
	if c == -1 {
		c = size - 1
		r--
	}
	return r, c
}
