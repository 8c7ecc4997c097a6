package core

import "testing"

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Point{0, -1}},
		{DirDown, Point{0, 1}},
		{DirLeft, Point{-1, 0}},
		{DirRight, Point{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if v := tc.dir.Vector(); v != tc.expected {
				t.Errorf("Vector() = %v, expected %v", v, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if o := tc.dir.Opposite(); o != tc.expected {
				t.Errorf("Opposite() = %v, expected %v", o, tc.expected)
			}
			// Opposite of opposite is the original
			if o := tc.dir.Opposite().Opposite(); o != tc.dir {
				t.Errorf("Opposite(Opposite()) = %v, expected %v", o, tc.dir)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: -1, Y: 2}

	if got := p.Add(q); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Add() = %v, expected {2 6}", got)
	}
}

func TestActionDirectionFor(t *testing.T) {
	tests := []struct {
		action   Action
		dir      Direction
		ok       bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionPause, 0, false},
		{ActionConfirm, 0, false},
		{ActionNone, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.DirectionFor()
			if ok != tc.ok {
				t.Fatalf("DirectionFor() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && dir != tc.dir {
				t.Errorf("DirectionFor() = %v, expected %v", dir, tc.dir)
			}
		})
	}
}
