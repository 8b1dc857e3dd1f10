// Package tuibox provides the frame differ for the renderer.
package tuibox

// DiffRuns compares two equally-sized buffers row by row and returns
// the runs of consecutive cells that changed, in row order. Repainting
// only those runs transforms `from` into `to` on screen.
func DiffRuns(from, to *CellBuffer) []CellRun {
	width := min(from.Width(), to.Width())
	height := min(from.Height(), to.Height())

	var runs []CellRun
	for y := 0; y < height; y++ {
		var current *CellRun
		for x := 0; x < width; x++ {
			toCell := to.Get(x, y)
			if from.Get(x, y).Equal(toCell) {
				current = nil
				continue
			}
			if current == nil {
				runs = append(runs, CellRun{X: x, Y: y})
				current = &runs[len(runs)-1]
			}
			current.Cells = append(current.Cells, toCell)
		}
	}
	return runs
}

// FullRuns returns every row of a buffer as one run, for the first
// frame where there is nothing to diff against.
func FullRuns(buf *CellBuffer) []CellRun {
	runs := make([]CellRun, 0, buf.Height())
	for y := 0; y < buf.Height(); y++ {
		run := CellRun{X: 0, Y: y, Cells: make([]Cell, 0, buf.Width())}
		for x := 0; x < buf.Width(); x++ {
			run.Cells = append(run.Cells, buf.Get(x, y))
		}
		runs = append(runs, run)
	}
	return runs
}
