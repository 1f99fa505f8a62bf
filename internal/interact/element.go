package interact

import (
	"context"
	"sync/atomic"

	slogcontext "github.com/veqryn/slog-context"

	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/host"
	"github.com/agentx-labs/seltrack/internal/service"
)

// Element is one row of a tracker list: an entry shown at Index of the
// list backed by Service.
type Element struct {
	Entry   *entry.Entry
	Index   int
	Service service.Service

	host     host.Host
	prefs    func() config.Preferences
	onDetail func(*entry.Entry)

	click *Timer
	hover *Timer

	hovering atomic.Bool
	pressed  atomic.Bool
}

// ElementOption configures an Element.
type ElementOption func(*elementOptions)

type elementOptions struct {
	prefs    func() config.Preferences
	onDetail func(*entry.Entry)
	timer    []TimerOption
}

// WithPreferences sets the preference source. It is consulted on every
// event, so configuration changes apply without rebuilding elements.
func WithPreferences(fn func() config.Preferences) ElementOption {
	return func(o *elementOptions) { o.prefs = fn }
}

// WithDetail sets the callback that shows hover details for an entry.
func WithDetail(fn func(*entry.Entry)) ElementOption {
	return func(o *elementOptions) { o.onDetail = fn }
}

// WithTimerOptions configures the element's click and hover timers.
func WithTimerOptions(opts ...TimerOption) ElementOption {
	return func(o *elementOptions) { o.timer = append(o.timer, opts...) }
}

// NewElement binds e, shown at index of svc, to h.
func NewElement(h host.Host, svc service.Service, index int, e *entry.Entry, opts ...ElementOption) *Element {
	o := elementOptions{prefs: config.DefaultPreferences}
	for _, opt := range opts {
		opt(&o)
	}
	return &Element{
		Entry:    e,
		Index:    index,
		Service:  svc,
		host:     h,
		prefs:    o.prefs,
		onDetail: o.onDetail,
		click:    NewTimer(o.timer...),
		hover:    NewTimer(o.timer...),
	}
}

// Click handles a primary-button click. A single click on a selectable
// entry selects it after the click delay, optionally moving the list
// cursor first. A double click cancels that selection, resets the cursor
// and opens the entry.
func (el *Element) Click(ctx context.Context, count int) {
	if el.Entry == nil {
		return
	}
	logger := slogcontext.FromCtx(ctx).With("entry", el.Entry.DisplayName())

	switch count {
	case 1:
		state := el.Entry.State(el.host)
		if !state.Selectable() {
			logger.Debug("ignoring click", "state", state.String())
			return
		}
		prefs := el.prefs()
		if prefs.UpdateWhenSelectionInTracker && el.Service != nil {
			el.Service.SetCurrentSelectionIndex(el.Index)
		}
		el.click.Schedule(prefs.ClickDelay, func() {
			if ref := el.Entry.Ref(); ref != nil {
				el.host.Select(ref)
			}
		})
	case 2:
		el.click.Cancel()
		if el.Service != nil {
			el.Service.ResetCurrentSelection()
		}
		el.Entry.Open(ctx, el.host)
	}
}

// PointerEnter marks the element hovered unless a button is held.
func (el *Element) PointerEnter(buttonHeld bool) {
	if !buttonHeld {
		el.hovering.Store(true)
	}
}

// PointerLeave ends hovering and drops a pending detail callback.
func (el *Element) PointerLeave() {
	el.hovering.Store(false)
	el.hover.Cancel()
}

func (el *Element) PointerDown() {
	el.pressed.Store(true)
	el.hovering.Store(false)
}

func (el *Element) PointerUp() {
	el.pressed.Store(false)
	el.hovering.Store(true)
}

// PointerMove restarts the hover delay. The detail callback fires only if
// the pointer is still hovering when the delay elapses.
func (el *Element) PointerMove() {
	prefs := el.prefs()
	if !prefs.DetailOnHover || el.onDetail == nil {
		return
	}
	el.hover.Schedule(prefs.HoverDelay, func() {
		if el.hovering.Load() && !el.pressed.Load() {
			el.onDetail(el.Entry)
		}
	})
}

// Close cancels every pending callback.
func (el *Element) Close() {
	el.click.Cancel()
	el.hover.Cancel()
}
