// Package ui contains the Bubble Tea program that renders the portfolio page.
// The Model type focuses on message orchestration, while dedicated helpers own
// scrolling, input, rendering, and the contact flow.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update offers every message to the contact form first. Key presses stop
//     there while the form has focus; timers and other messages continue into
//     a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Scroll and resize handlers (scroll.go) feed the tracker, which owns the
//     active section, the navbar flags, and the back-to-top button. Scroll
//     evaluation is throttled with a trailing flush; resize evaluation is
//     debounced with tagged ticks so only the last resize of a burst counts.
//   - Animation state (typing lines, counters, skill bars, reveals, smooth
//     scrolling) lives in the typing and motion packages. The model renders
//     it into a document on every dirty update and schedules frames only
//     while something is moving.
//
// Units:
//   - The tracker works in abstract units. The model scales viewport rows by
//     Options.RowUnits and columns by Options.ColUnits before handing them
//     over, so the tracker's breakpoints and offsets keep their proportions.
//
// Contact relay:
//   - Submissions go to an Outbox that delivers them off the event loop.
//     Results come back through waitForRelayResult and are applied by
//     handleRelayResultMsg, which surfaces a toast and re-arms the wait.
package ui
