package pedal

import "time"

// Controls is the pedal's view of the front-panel hardware: two continuous
// knobs reported as raw values in [0, 1] and one momentary reset switch.
// Sampling the physical ADCs is the platform's job, not this package's.
type Controls interface {
	Gain() float32
	Selector() float32
	ResetRequested() bool
}

// ControlLoop runs the control context: an explicit per-tick task list
// executed in a fixed, documented order. It owns every transition of shared
// state; the render context never calls into it.
type ControlLoop struct {
	controls  Controls
	store     flusher
	selection *SelectionController
	pipeline  *Pipeline
	gain      Param
	onReset   func()
}

// flusher is the slice of the settings store the loop drives each tick.
type flusher interface {
	Flush()
}

// NewControlLoop assembles the per-tick schedule. onReset may be nil when
// the platform has no reflash path (tests, offline rendering).
func NewControlLoop(controls Controls, store flusher, selection *SelectionController, pipeline *Pipeline, onReset func()) *ControlLoop {
	return &ControlLoop{
		controls:  controls,
		store:     store,
		selection: selection,
		pipeline:  pipeline,
		gain:      GainParam(),
		onReset:   onReset,
	}
}

// Tick executes one control iteration. Task order is fixed:
//
//  1. flush dirty settings to storage
//  2. poll the gain knob and publish the mapped gain
//  3. poll the selector and apply selection changes
//  4. check the reset-to-bootloader signal
//
// Storage latency incurred here is absorbed by the platform's audio
// buffering and never delays the render context.
func (l *ControlLoop) Tick() {
	l.store.Flush()
	l.pipeline.SetGain(l.gain.Map(l.controls.Gain()))
	l.selection.Tick(l.controls.Selector())
	if l.onReset != nil && l.controls.ResetRequested() {
		l.onReset()
	}
}

// Run ticks the loop at the given period until stop is closed. Hosts that
// schedule the control context themselves can ignore Run and call Tick
// directly; the core has no cancellation model of its own.
func (l *ControlLoop) Run(period time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			l.Tick()
		}
	}
}
