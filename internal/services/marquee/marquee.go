// Package marquee builds the wraparound image strips shown on the gallery wall.
package marquee

import (
	"errors"
	"fmt"
	"math/rand"
)

const DefaultWindowSize = 6

var ErrInvalidArgument = errors.New("invalid marquee argument")

// Options controls Layout. Zero values fall back to the gallery wall defaults.
type Options struct {
	PerWindow int
	Windows   int
	Latest    int
}

func (o Options) withDefaults() Options {
	if o.PerWindow <= 0 {
		o.PerWindow = DefaultWindowSize
	}
	if o.Windows <= 0 {
		o.Windows = 3
	}
	if o.Latest < 0 {
		o.Latest = 0
	}
	return o
}

// Window returns size elements of seq starting at start, wrapping around.
// An empty seq gives an empty window whatever the other arguments are.
func Window(seq []string, start, size int) ([]string, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidArgument, size)
	}

	n := len(seq)
	if n == 0 {
		return []string{}, nil
	}

	offset := ((start % n) + n) % n

	out := make([]string, size)
	for i := range out {
		out[i] = seq[(offset+i)%n]
	}
	return out, nil
}

// Fill repeats items as whole copies until the result holds at least minLen entries.
func Fill(items []string, minLen int) []string {
	out := make([]string, len(items))
	copy(out, items)

	if len(items) == 0 {
		return out
	}

	for len(out) < minLen {
		out = append(out, items...)
	}
	return out
}

// Arrange keeps the first latest items in place and shuffles the rest once.
func Arrange(items []string, latest int, rng *rand.Rand) []string {
	out := make([]string, len(items))
	copy(out, items)

	if latest < 0 {
		latest = 0
	}
	if latest >= len(out) {
		return out
	}

	rest := out[latest:]
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	return out
}

// Marquee is the filled source list plus one window per strip.
type Marquee struct {
	Images  []string
	Windows [][]string
}

// Layout arranges, fills and slices items into opts.Windows strips taken at
// offsets 0, PerWindow, 2*PerWindow and so on.
func Layout(items []string, opts Options, rng *rand.Rand) (Marquee, error) {
	opts = opts.withDefaults()

	filled := Fill(Arrange(items, opts.Latest, rng), opts.PerWindow*opts.Windows)

	windows := make([][]string, opts.Windows)
	for i := range windows {
		w, err := Window(filled, i*opts.PerWindow, opts.PerWindow)
		if err != nil {
			return Marquee{}, err
		}
		windows[i] = w
	}

	return Marquee{Images: filled, Windows: windows}, nil
}
