package levels

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		mapText string
		spawn   [2]int
		wantErr bool
	}{
		{name: "ok", mapText: "3 1 2 2 3", spawn: [2]int{0, 0}},
		{name: "spawn_on_empty", mapText: "3 1 1 2 3", spawn: [2]int{0, 0}, wantErr: true},
		{name: "spawn_on_fragile", mapText: "3 1 4 2 3", spawn: [2]int{0, 0}, wantErr: true},
		{name: "spawn_outside", mapText: "3 1 2 2 3", spawn: [2]int{3, 0}, wantErr: true},
		{name: "no_goal", mapText: "3 1 2 2 2", spawn: [2]int{0, 0}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMap(tc.mapText)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			err = Check(Entry{Level: 1, Spawn: tc.spawn}, m)
			if tc.wantErr != (err != nil) {
				t.Fatalf("Check() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnplayable) {
				t.Fatalf("expected ErrUnplayable, got %v", err)
			}
		})
	}
}
