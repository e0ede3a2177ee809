// Package replay records the input stream of a run and re-simulates it.
// A recording holds everything the engine needs to reproduce a run
// bit-for-bit: seed, viewport changes, rules hash and one input per tick.
package replay

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/jumper"
)

// Version is the recording format version.
const Version = 1

// ErrMismatch is returned by Verify when a re-simulation diverges.
var ErrMismatch = errors.New("replay: re-simulation diverged")

// Input bits in a packed tick.
const (
	bitLeft uint8 = 1 << iota
	bitRight
	bitInteract
)

// Span is a run of identical inputs.
type Span struct {
	Input uint8  `msgpack:"i"`
	Count uint32 `msgpack:"n"`
}

// Resize is a viewport change applied before the given tick.
type Resize struct {
	Tick   uint64  `msgpack:"t"`
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
}

// Outcome is what a run produced.
type Outcome struct {
	Score     int    `msgpack:"score"`
	Ticks     uint64 `msgpack:"ticks"`
	SpawnHash uint64 `msgpack:"spawn"`
	Snapshot  uint64 `msgpack:"snap"`
}

// Recording is a complete, self-contained replay.
type Recording struct {
	Version    int      `msgpack:"v"`
	GameID     string   `msgpack:"game"`
	Seed       int64    `msgpack:"seed"`
	ConfigHash uint64   `msgpack:"cfg"`
	Resizes    []Resize `msgpack:"resize"`
	Inputs     []Span   `msgpack:"in"`
	Outcome    Outcome  `msgpack:"out"`
}

// Ticks returns the number of recorded ticks.
func (r *Recording) Ticks() uint64 {
	var n uint64
	for _, s := range r.Inputs {
		n += uint64(s.Count)
	}
	return n
}

// Pack turns an engine input into its recorded form.
func Pack(in jumper.Input) uint8 {
	var b uint8
	if in.MoveLeft {
		b |= bitLeft
	}
	if in.MoveRight {
		b |= bitRight
	}
	if in.Interact {
		b |= bitInteract
	}
	return b
}

// Unpack is the inverse of Pack.
func Unpack(b uint8) jumper.Input {
	return jumper.Input{
		MoveLeft:  b&bitLeft != 0,
		MoveRight: b&bitRight != 0,
		Interact:  b&bitInteract != 0,
	}
}

// HashConfig fingerprints a rule set so a replay is never run against
// different rules than it was recorded with.
func HashConfig(cfg config.SkyhopConfig) (uint64, error) {
	data, err := msgpack.Marshal(&cfg)
	if err != nil {
		return 0, fmt.Errorf("replay: cannot encode config: %w", err)
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64(), nil
}

// Marshal encodes a recording.
func Marshal(r *Recording) ([]byte, error) {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a recording and checks its version.
func Unmarshal(data []byte) (*Recording, error) {
	var r Recording
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	if r.Version != Version {
		return nil, fmt.Errorf("replay: unsupported version %d", r.Version)
	}
	return &r, nil
}

// Play re-simulates a recording with the given rules.
func Play(r *Recording, cfg config.SkyhopConfig) (Outcome, error) {
	want, err := HashConfig(cfg)
	if err != nil {
		return Outcome{}, err
	}
	if want != r.ConfigHash {
		return Outcome{}, fmt.Errorf("replay: config hash %x does not match recording %x", want, r.ConfigHash)
	}

	e := jumper.NewEngine(cfg, core.NewSimpleRNG(r.Seed))
	var spawnHash uint64
	e.SetHooks(jumper.Hooks{
		OnSpawn: func(ev jumper.SpawnEvent) { spawnHash = jumper.HashSpawn(spawnHash, ev) },
	})

	var tick uint64
	next := 0
	for _, span := range r.Inputs {
		in := Unpack(span.Input)
		for range span.Count {
			for next < len(r.Resizes) && r.Resizes[next].Tick <= tick {
				e.Resize(r.Resizes[next].Width, r.Resizes[next].Height)
				next++
			}
			e.Step(in)
			tick++
		}
	}
	// Resizes after the last recorded tick still shape the final state.
	for ; next < len(r.Resizes); next++ {
		e.Resize(r.Resizes[next].Width, r.Resizes[next].Height)
	}

	snap := e.Snapshot()
	return Outcome{
		Score:     e.Score(),
		Ticks:     tick,
		SpawnHash: spawnHash,
		Snapshot:  snap.Hash(),
	}, nil
}

// Verify re-simulates a recording and compares the result with the
// recorded outcome.
func Verify(r *Recording, cfg config.SkyhopConfig) (Outcome, error) {
	got, err := Play(r, cfg)
	if err != nil {
		return got, err
	}
	if got != r.Outcome {
		return got, fmt.Errorf("%w: got %+v, recorded %+v", ErrMismatch, got, r.Outcome)
	}
	return got, nil
}
