package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	names := []string{"Run1", "dragon hunt", "Swamp"}

	tests := []struct {
		name   string
		word   string
		want   string
		wantOK bool
	}{
		{"transposed is two edits", "Rnu1", "", false},
		{"one edit", "Run2", "Run1", true},
		{"case differs", "swamp", "Swamp", true},
		{"prefix", "drag", "dragon hunt", true},
		{"longer name allows more edits", "dragn hnt", "dragon hunt", true},
		{"too far", "castle", "", false},
		{"exact", "Swamp", "", false},
		{"blank", "  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.word, names)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosest_Commands(t *testing.T) {
	cmds := []string{"help", "login", "list", "load", "save", "quit"}

	got, ok := Closest("lgin", cmds)
	assert.True(t, ok)
	assert.Equal(t, "login", got)

	got, ok = Closest("sav", cmds)
	assert.True(t, ok)
	assert.Equal(t, "save", got)
}
