// Package jumper implements the simulation core of an endless vertical
// platformer: player physics, procedural platform/item/enemy generation with a
// difficulty curve, collision responses, timed power-ups, camera scroll and
// the start/playing/gameover state machine.
//
// The package is a pure, single-threaded state machine. It performs no I/O,
// no drawing and no logging; the host calls Step once per fixed tick, reads a
// Snapshot to render, and receives lifecycle callbacks through Hooks.
// All randomness comes from an injected core.RNG, so a seed plus an input
// sequence fully determines a run.
package jumper
