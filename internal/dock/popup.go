package dock

import (
	"sync"
	"time"
)

// PopupTimer debounces the hover-triggered window-list popup. A popup is
// scheduled on hover-enter and fires after the configured delay unless a
// hover-leave cancels it first; cancellation has no side effect.
//
// The fire callback runs on a timer goroutine. Hosts that care about the
// serialized-event invariant should have it do nothing but enqueue.
type PopupTimer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewPopupTimer returns a timer with the given debounce delay.
func NewPopupTimer(delay time.Duration) *PopupTimer {
	return &PopupTimer{delay: delay}
}

// SetDelay updates the debounce delay for future Schedule calls.
func (p *PopupTimer) SetDelay(delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delay = delay
}

// Schedule arms the popup for the hovered slot, replacing any pending
// one. With a non-positive delay the callback fires immediately on the
// calling goroutine.
func (p *PopupTimer) Schedule(id AppID, fire func(AppID)) {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	delay := p.delay
	if delay <= 0 {
		p.mu.Unlock()
		fire(id)
		return
	}
	p.timer = time.AfterFunc(delay, func() {
		p.mu.Lock()
		p.timer = nil
		p.mu.Unlock()
		fire(id)
	})
	p.mu.Unlock()
}

// Cancel drops any pending popup.
func (p *PopupTimer) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
