package marquee

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func TestWindow(t *testing.T) {
	seq := letters(8)

	tests := []struct {
		name  string
		seq   []string
		start int
		size  int
		want  []string
	}{
		{"wraps past the end", seq, 6, 6, []string{"G", "H", "A", "B", "C", "D"}},
		{"from zero", seq, 0, 6, []string{"A", "B", "C", "D", "E", "F"}},
		{"start beyond length", seq, 17, 3, []string{"B", "C", "D"}},
		{"negative start", seq, -1, 2, []string{"H", "A"}},
		{"size longer than seq", []string{"a", "b"}, 1, 5, []string{"b", "a", "b", "a", "b"}},
		{"zero size", seq, 3, 0, []string{}},
		{"empty seq", nil, 4, 6, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Window(tt.seq, tt.start, tt.size)
			if err != nil {
				t.Fatalf("Window() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindow_Property(t *testing.T) {
	for n := 1; n <= 9; n++ {
		seq := letters(n)
		for start := 0; start < 30; start++ {
			got, err := Window(seq, start, DefaultWindowSize)
			if err != nil {
				t.Fatalf("Window() error = %v", err)
			}
			if len(got) != DefaultWindowSize {
				t.Fatalf("len = %d, want %d", len(got), DefaultWindowSize)
			}
			for i, v := range got {
				if want := seq[(start+i)%n]; v != want {
					t.Fatalf("n=%d start=%d: got[%d] = %v, want %v", n, start, i, v, want)
				}
			}
		}
	}
}

func TestWindow_NegativeSize(t *testing.T) {
	if _, err := Window(letters(3), 0, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Window() error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Window(nil, 0, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Window() on empty seq error = %v, want ErrInvalidArgument", err)
	}
}

func TestWindow_DoesNotMutate(t *testing.T) {
	seq := letters(5)
	before := append([]string(nil), seq...)

	got, _ := Window(seq, 2, 4)
	got[0] = "changed"

	if !reflect.DeepEqual(seq, before) {
		t.Errorf("seq mutated to %v", seq)
	}
}

func TestFill(t *testing.T) {
	t.Run("two items repeated nine times", func(t *testing.T) {
		got := Fill([]string{"a", "b"}, 18)
		if len(got) != 18 {
			t.Fatalf("len = %d, want 18", len(got))
		}
		for i, v := range got {
			if want := []string{"a", "b"}[i%2]; v != want {
				t.Fatalf("got[%d] = %v, want %v", i, v, want)
			}
		}
	})

	t.Run("five items use whole copies", func(t *testing.T) {
		raw := letters(5)
		got := Fill(raw, 18)
		if len(got) != 20 {
			t.Fatalf("len = %d, want 20", len(got))
		}
		for i, v := range got {
			if v != raw[i%5] {
				t.Fatalf("got[%d] = %v, want %v", i, v, raw[i%5])
			}
		}
	})

	t.Run("already long enough", func(t *testing.T) {
		raw := letters(20)
		if got := Fill(raw, 18); !reflect.DeepEqual(got, raw) {
			t.Errorf("Fill() = %v, want unchanged", got)
		}
	})

	t.Run("empty stays empty", func(t *testing.T) {
		if got := Fill(nil, 18); len(got) != 0 {
			t.Errorf("Fill() = %v, want empty", got)
		}
	})
}

func TestArrange(t *testing.T) {
	items := letters(12)
	rng := rand.New(rand.NewSource(7))

	got := Arrange(items, 6, rng)

	if !reflect.DeepEqual(got[:6], items[:6]) {
		t.Errorf("latest = %v, want %v", got[:6], items[:6])
	}

	rest := append([]string(nil), got[6:]...)
	sort.Strings(rest)
	if !reflect.DeepEqual(rest, items[6:]) {
		t.Errorf("rest = %v is not a permutation of %v", got[6:], items[6:])
	}

	if !reflect.DeepEqual(items, letters(12)) {
		t.Error("input mutated")
	}

	t.Run("fewer than latest", func(t *testing.T) {
		if got := Arrange(letters(4), 6, rng); !reflect.DeepEqual(got, letters(4)) {
			t.Errorf("Arrange() = %v, want unchanged", got)
		}
	})

	t.Run("seeded shuffle is reproducible", func(t *testing.T) {
		a := Arrange(items, 2, rand.New(rand.NewSource(42)))
		b := Arrange(items, 2, rand.New(rand.NewSource(42)))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Arrange() = %v and %v, want equal", a, b)
		}
	})
}

func TestLayout(t *testing.T) {
	t.Run("gallery wall", func(t *testing.T) {
		items := letters(8)
		m, err := Layout(items, Options{PerWindow: 6, Windows: 3, Latest: 6}, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("Layout() error = %v", err)
		}

		if len(m.Images) != 24 {
			t.Fatalf("len(Images) = %d, want 24", len(m.Images))
		}
		if len(m.Windows) != 3 {
			t.Fatalf("len(Windows) = %d, want 3", len(m.Windows))
		}
		if !reflect.DeepEqual(m.Windows[0], items[:6]) {
			t.Errorf("first window = %v, want latest six %v", m.Windows[0], items[:6])
		}
		for i, w := range m.Windows {
			want, _ := Window(m.Images, i*6, 6)
			if !reflect.DeepEqual(w, want) {
				t.Errorf("window %d = %v, want %v", i, w, want)
			}
		}
	})

	t.Run("no images", func(t *testing.T) {
		m, err := Layout(nil, Options{}, nil)
		if err != nil {
			t.Fatalf("Layout() error = %v", err)
		}
		if len(m.Images) != 0 {
			t.Errorf("Images = %v, want empty", m.Images)
		}
		for i, w := range m.Windows {
			if len(w) != 0 {
				t.Errorf("window %d = %v, want empty", i, w)
			}
		}
	})
}
