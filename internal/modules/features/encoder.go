// README: Integer label encoder fitted by the training pipeline.
package features

// Encoder maps a categorical label (make or model name) to the integer index
// the regression models were trained with. The class list comes from a fitted
// encoder artifact; the engine never refits it.
type Encoder struct {
	classes []string
	index   map[string]int
}

func NewEncoder(classes []string) *Encoder {
	idx := make(map[string]int, len(classes))
	for i, c := range classes {
		idx[c] = i
	}
	return &Encoder{classes: classes, index: idx}
}

// Encode returns the fitted index for label. ok is false when the label was
// not seen during training.
func (e *Encoder) Encode(label string) (int, bool) {
	i, ok := e.index[label]
	return i, ok
}

// DefaultIndex is the fallback for unseen labels: the midpoint of the fitted
// vocabulary, matching how the models were trained to treat unknowns.
func (e *Encoder) DefaultIndex() int {
	return len(e.classes) / 2
}

func (e *Encoder) Len() int {
	return len(e.classes)
}
