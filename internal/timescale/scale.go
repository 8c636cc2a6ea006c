// Package timescale implements the fixed-point duration unit used to
// express every measured latency in a run: nanoseconds, microseconds,
// milliseconds, or seconds.
package timescale

import (
	"fmt"
	"time"
)

// Scale is the unit durations are reported and aggregated in.
type Scale int

const (
	Nano Scale = iota
	Micro
	Milli
	Secs
)

// unitsPerSecond gives each scale's tick count within one second, so that
// Factor(a, Secs) recovers the familiar 1e9/1e6/1e3/1 ladder.
var unitsPerSecond = map[Scale]float64{
	Nano:  1e9,
	Micro: 1e6,
	Milli: 1e3,
	Secs:  1,
}

var names = map[Scale]string{
	Nano:  "nano",
	Micro: "micro",
	Milli: "milli",
	Secs:  "secs",
}

var fromName = map[string]Scale{
	"nano":  Nano,
	"micro": Micro,
	"milli": Milli,
	"secs":  Secs,
}

func (s Scale) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("Scale(%d)", int(s))
}

// Factor returns scale(a)/scale(b): the multiplier converting a value
// expressed in b's unit into a's unit.
func (s Scale) Factor(other Scale) float64 {
	return unitsPerSecond[s] / unitsPerSecond[other]
}

// Elapsed converts a wall-clock duration into this scale's scalar.
func (s Scale) Elapsed(d time.Duration) float64 {
	return d.Seconds() * unitsPerSecond[s]
}

// MarshalText implements encoding.TextMarshaler so Scale round-trips
// through both TOML and JSON.
func (s Scale) MarshalText() ([]byte, error) {
	name, ok := names[s]
	if !ok {
		return nil, fmt.Errorf("timescale: unknown scale %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scale) UnmarshalText(text []byte) error {
	v, ok := fromName[string(text)]
	if !ok {
		return fmt.Errorf("timescale: unrecognized scale %q", string(text))
	}
	*s = v
	return nil
}
