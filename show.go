package geom2d

// debugShow accumulates Parts passed to [Show] for process-wide overlay
// rendering by package svg.
var debugShow []Part

// Show records part for debug overlay rendering and returns it unchanged,
// so callers can wrap an expression in Show(...) without breaking a
// pipeline of calls.
func Show(part Part) Part {
	debugShow = append(debugShow, New(part.segments...))
	return part
}

// DebugShow returns the Parts recorded by [Show] so far, in recording order.
func DebugShow() []Part {
	return append([]Part(nil), debugShow...)
}

// ResetDebugShow clears the list [Show] has accumulated. Tests should call
// this between cases; the list is otherwise process-global, and the only
// automatic clearing is svg.Write's, after it renders a non-empty list.
func ResetDebugShow() {
	debugShow = nil
}
