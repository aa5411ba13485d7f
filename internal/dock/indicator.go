package dock

// IndicatorState is the derived running/attention state of one slot.
type IndicatorState int

const (
	// IndicatorEmpty means the slot has no windows (pinned-only).
	IndicatorEmpty IndicatorState = iota
	// IndicatorRunning means exactly one window, or several with
	// multi-window indicators disabled.
	IndicatorRunning
	// IndicatorRunningMulti means more than one window with multi-window
	// indicators enabled.
	IndicatorRunningMulti
	// IndicatorAttention overrides the running states while any window
	// of the slot carries the urgency flag.
	IndicatorAttention
)

func (s IndicatorState) String() string {
	switch s {
	case IndicatorEmpty:
		return "empty"
	case IndicatorRunning:
		return "running"
	case IndicatorRunningMulti:
		return "running-multi"
	case IndicatorAttention:
		return "attention"
	}
	return "unknown"
}

// MaxDistinctIndicators caps how many per-window indicators a slot may
// show. Beyond this, extra windows are counted but not individually
// distinguished.
const MaxDistinctIndicators = 4

// AttentionPolicy controls when a slot's attention state clears.
type AttentionPolicy int

const (
	// AttentionUntilFocused keeps the urgency flag until the urgent
	// window itself is activated.
	AttentionUntilFocused AttentionPolicy = iota
	// AttentionOneShot clears urgency across the whole slot on any
	// activation of one of its windows.
	AttentionOneShot
)

// ComputeIndicator derives the indicator state and the number of
// distinct indicators for a slot's window set.
func ComputeIndicator(windows []*Window, multiInd bool) (IndicatorState, int) {
	n := len(windows)
	if n == 0 {
		return IndicatorEmpty, 0
	}

	count := 1
	if multiInd {
		count = n
		if count > MaxDistinctIndicators {
			count = MaxDistinctIndicators
		}
	}

	for _, w := range windows {
		if w.Urgent {
			return IndicatorAttention, count
		}
	}
	if n > 1 && multiInd {
		return IndicatorRunningMulti, count
	}
	return IndicatorRunning, count
}
