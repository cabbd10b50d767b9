package frogger

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot contains the simulation state needed to compare two runs.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	RunID    string
	Tick     uint64
	Lives    int
	Finished int
	Status   string

	// Frog state: X, Y, TargetX, TargetY, Angle; empty when no frog is alive
	FrogData []float64
	Riding   bool

	// Pattern offsets, lanes first then rivers, top to bottom
	PatternData []float64

	// Goal slots, left to right
	Occupied []bool

	Corpses int
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     w.ticks,
		Lives:    w.lives,
		Finished: w.finished,
		Status:   w.status.String(),
		Corpses:  len(w.corpses),
	}

	if f := w.frog; f != nil {
		s.FrogData = []float64{f.Box.Pos.X, f.Box.Pos.Y, f.Target.X, f.Target.Y, f.Angle}
		_, s.Riding = f.Riding()
	}

	for _, l := range w.lanes {
		for _, p := range l.tiler.Patterns {
			s.PatternData = append(s.PatternData, p.Offset.X)
		}
	}
	for _, r := range w.rivers {
		for _, p := range r.tiler.Patterns {
			s.PatternData = append(s.PatternData, p.Offset.X)
		}
	}

	if w.bridge != nil {
		for _, t := range w.bridge.Targets {
			s.Occupied = append(s.Occupied, t.Occupied)
		}
	}

	return s
}

// Checksum hashes everything but RunID, so two runs with the same seed and
// inputs produce the same value.
func (s Snapshot) Checksum() uint64 {
	buf := make([]byte, 0, 64+8*(len(s.FrogData)+len(s.PatternData))+len(s.Occupied))

	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Lives))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Finished))
	buf = append(buf, s.Status...)
	buf = append(buf, 0)

	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.FrogData)))
	for _, v := range s.FrogData {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	buf = append(buf, boolByte(s.Riding))

	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.PatternData)))
	for _, v := range s.PatternData {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	for _, o := range s.Occupied {
		buf = append(buf, boolByte(o))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Corpses))

	return xxhash.Sum64(buf)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
