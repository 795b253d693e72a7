// Package gridutils partitions a canvas into a uniform grid of cells and maps
// positions between the coordinate spaces sketches work in.
//
// A [Grid] owns its dimensions, a fixed canvas size and one value of type T per
// cell, stored row-major. Grids are built in two stages so dimensions are fixed
// before any cell data is generated:
//
//	rng := core.NewRNG(42)
//	grid := gridutils.NewBuilder[float64](3, 3, gridutils.Vec2{X: 300, Y: 300}).
//		WithCellData(func(row, col int, bounds gridutils.Rect, rng *core.RNG) float64 {
//			return rng.Range(0, bounds.Width/2)
//		}).
//		Build(rng)
//
// The generator runs exactly once per cell in row-major order with the same RNG,
// so a fixed seed reproduces the same grid.
//
// # Coordinate spaces
//
// Every cell view ([CellContext], [CellContextMut]) embeds a [Cell] that converts
// between four spaces:
//
//   - absolute pixels: positions on the whole canvas
//   - cell-local pixels: relative to the cell's top-left corner
//   - cell-local normalized: (0,0) to (1,1) across one cell
//   - canvas normalized: (0,0) to (1,1) across the whole canvas
//
// [Cell.Norm] is the usual way to place something: it maps a cell-local
// normalized position to absolute pixels. None of the transforms clamp, so
// inputs outside [0, 1] extrapolate past the cell edges.
//
// # Iteration
//
// [Grid.Cells] and [Grid.CellsMut] are range-over-func sequences in row-major
// order. CellsMut yields one writable view at a time; its Data pointer is only
// meant to be used during that loop step.
//
//	for cell := range grid.CellsMut() {
//		*cell.Data += 100
//	}
package gridutils
