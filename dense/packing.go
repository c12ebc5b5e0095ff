package dense

// This file holds the pure triangular-packing arithmetic used by the
// engine. Everything here is a function of matrix order and positions
// only — no engine state — so the resize math can be verified in
// isolation from vertex bookkeeping.
//
// Layout: the packed array of order n stores the upper triangle of a
// symmetric n×n boolean matrix, diagonal included, row-major; row i
// holds columns i..n-1, so it starts after the i longer rows before it
// and spans n-i cells.

// packedLen returns the number of cells in a packing of order n:
// n·(n+1)/2, the size of the upper triangle including the diagonal.
// Complexity: O(1).
func packedLen(n int) int {
	return n * (n + 1) / 2
}

// rowStart returns the offset of cell (i, i), the first cell of row i,
// within a packing of order n.
// Complexity: O(1).
func rowStart(n, i int) int {
	return i*n - i*(i-1)/2
}

// packedIndex maps matrix coordinates (x, y) onto the linear offset of
// the corresponding cell within a packing of order n. The mapping is
// symmetric in (x, y): both orientations of an undirected pair resolve
// to the same cell.
// Complexity: O(1).
func packedIndex(n, x, y int) int {
	if x <= y {
		return (2*n-x-1)*x/2 + y
	}

	return (2*n-y-1)*y/2 + x
}

// growOffsets returns the offsets, within a packing of order n+1, of
// the n+1 fresh cells introduced when a packing of order n grows by
// one vertex. The fresh cells are column n of every row 0..n — one new
// adjacency per existing vertex plus the newcomer's self-loop — and
// the returned offsets are strictly ascending, interleaved through the
// grown array rather than clustered at its end.
// Complexity: O(n) time and space.
func growOffsets(n int) []int {
	offs := make([]int, 0, n+1)
	for i := 0; i <= n; i++ {
		offs = append(offs, rowStart(n+1, i)+n-i)
	}

	return offs
}

// shrinkOffsets returns the offsets, within a packing of order n, of
// the n cells touching row/column pos — the cells that disappear when
// the vertex at position pos is removed. Offsets are strictly
// descending so they can be excised one by one without disturbing the
// offsets still pending.
// Complexity: O(n) time and space.
func shrinkOffsets(n, pos int) []int {
	offs := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		offs = append(offs, packedIndex(n, pos, i))
	}

	return offs
}

// expand repacks cells from order n to order n+1, injecting one false
// cell per fresh offset and preserving every existing adjacency at its
// new location.
// Complexity: O(n²) time and space (size of the grown packing).
func expand(cells []bool, n int) []bool {
	grown := make([]bool, packedLen(n+1))
	fresh := growOffsets(n)

	var src, f int
	for dst := range grown {
		if f < len(fresh) && dst == fresh[f] {
			// Fresh cell: stays false (no adjacency yet).
			f++
			continue
		}
		grown[dst] = cells[src]
		src++
	}

	return grown
}
