package ui

// FocusLayer represents what component currently owns keyboard input
type FocusLayer int

const (
	FocusMain    FocusLayer = iota // Catalog browsing and build actions
	FocusFilter                    // Typing a catalog filter
	FocusHelp                      // Help dialog open
	FocusConfirm                   // Confirmation dialog (highest priority)
)

// String returns a human-readable name for the focus layer
func (f FocusLayer) String() string {
	switch f {
	case FocusMain:
		return "Main"
	case FocusFilter:
		return "Filter"
	case FocusHelp:
		return "Help"
	case FocusConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// FocusStack manages the stack of focus layers.
// The stack always has at least one element (FocusMain at the bottom).
type FocusStack struct {
	stack []FocusLayer
}

// NewFocusStack creates a new focus stack with FocusMain as the base layer
func NewFocusStack() FocusStack {
	return FocusStack{
		stack: []FocusLayer{FocusMain},
	}
}

// Push adds a new focus layer to the top of the stack.
// Does nothing if the layer is already at the top.
func (f *FocusStack) Push(layer FocusLayer) {
	if len(f.stack) > 0 && f.stack[len(f.stack)-1] == layer {
		return
	}
	f.stack = append(f.stack, layer)
}

// Pop removes and returns the top focus layer.
// Never pops below FocusMain.
func (f *FocusStack) Pop() FocusLayer {
	if len(f.stack) <= 1 {
		return FocusMain
	}
	top := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return top
}

// Current returns the top of the stack
func (f *FocusStack) Current() FocusLayer {
	if len(f.stack) == 0 {
		return FocusMain
	}
	return f.stack[len(f.stack)-1]
}

// Remove drops a layer from anywhere in the stack, e.g. when its owner hides itself
func (f *FocusStack) Remove(layer FocusLayer) {
	if layer == FocusMain {
		return
	}
	kept := f.stack[:0]
	for _, l := range f.stack {
		if l != layer {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, FocusMain)
	}
	f.stack = kept
}

// Depth returns the number of layers in the stack (including FocusMain)
func (f *FocusStack) Depth() int {
	return len(f.stack)
}
