// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestBuffer_Interleave(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Data: [][]float64{{1, 2, 3}, {-1, -2, -3}}}
	got := buf.Interleaved()
	want := []float64{1, -1, 2, -2, 3, -3}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Interleaved()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	back := Deinterleave(got, 2)
	if back.Shape() != [2]int{2, 3} {
		t.Fatalf("Deinterleave() shape = %v, want [2 3]", back.Shape())
	}
	for c := range buf.Data {
		for f := range buf.Data[c] {
			if back.Data[c][f] != buf.Data[c][f] {
				t.Errorf("Deinterleave()[%d][%d] = %v, want %v", c, f, back.Data[c][f], buf.Data[c][f])
			}
		}
	}
}

func TestDeinterleave_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	b := Deinterleave([]float64{1, 2, 3, 4, 5}, 2)
	if b.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", b.Frames())
	}

	if got := Deinterleave([]float64{1}, 0); got.Channels() != 0 {
		t.Errorf("Deinterleave with 0 channels = %d channels, want 0", got.Channels())
	}
}

func TestBuffer_Peak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data [][]float64
		want float64
	}{
		{name: "empty", data: nil, want: 0},
		{name: "silence", data: [][]float64{{0, 0}}, want: 0},
		{name: "positive", data: [][]float64{{0.1, 0.7}, {0.2, 0.3}}, want: 0.7},
		{name: "negative wins", data: [][]float64{{0.1, 0.7}, {-0.9, 0.3}}, want: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := &Buffer{Data: tt.data}
			if got := b.Peak(); got != tt.want {
				t.Errorf("Peak() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuffer_CloneIsDeep(t *testing.T) {
	t.Parallel()

	b := NewBuffer(2, 4)
	c := b.Clone()
	c.Data[1][3] = 1

	if b.Data[1][3] != 0 {
		t.Error("Clone() shares sample memory")
	}
}
