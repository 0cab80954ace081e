// Package models defines the party, character and account types shared by
// the codec, the storage layer and the CLI.
package models

import (
	"fmt"
	"strings"
)

// Character is a single party member: a fixed set of integer stats and an
// ordered list of equipment ids. Duplicate equipment ids are allowed.
type Character struct {
	ClassID  int `json:"class_id"`
	Health   int `json:"health"`
	Mana     int `json:"mana"`
	Strength int `json:"strength"`
	Agility  int `json:"agility"`
	Wisdom   int `json:"wisdom"`

	Equipment []int `json:"equipment"`
}

// Stats returns the six fixed attributes in their serialized order.
func (c Character) Stats() [6]int {
	return [6]int{c.ClassID, c.Health, c.Mana, c.Strength, c.Agility, c.Wisdom}
}

// Equal reports whether two characters carry the same stats and equipment.
// A nil and an empty equipment list compare equal.
func (c Character) Equal(o Character) bool {
	if c.Stats() != o.Stats() || len(c.Equipment) != len(o.Equipment) {
		return false
	}
	for i := range c.Equipment {
		if c.Equipment[i] != o.Equipment[i] {
			return false
		}
	}
	return true
}

func (c Character) String() string {
	return fmt.Sprintf("class=%d hp=%d mp=%d str=%d agi=%d wis=%d equipment=%v",
		c.ClassID, c.Health, c.Mana, c.Strength, c.Agility, c.Wisdom, c.Equipment)
}

// Party is an ordered collection of characters saved and loaded as one unit.
// A party with no characters is valid.
type Party struct {
	Characters []Character `json:"characters"`
}

// NewParty builds a party from the given characters.
func NewParty(chars ...Character) Party {
	return Party{Characters: append([]Character(nil), chars...)}
}

func (p Party) Len() int {
	return len(p.Characters)
}

func (p Party) IsEmpty() bool {
	return len(p.Characters) == 0
}

// Equal compares two parties character by character.
func (p Party) Equal(o Party) bool {
	if len(p.Characters) != len(o.Characters) {
		return false
	}
	for i := range p.Characters {
		if !p.Characters[i].Equal(o.Characters[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers can hand the party around without
// sharing equipment slices.
func (p Party) Clone() Party {
	out := Party{Characters: make([]Character, len(p.Characters))}
	for i, c := range p.Characters {
		c.Equipment = append([]int(nil), c.Equipment...)
		out.Characters[i] = c
	}
	return out
}

func (p Party) String() string {
	if p.IsEmpty() {
		return "(empty party)"
	}
	var sb strings.Builder
	for i, c := range p.Characters {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "#%d %s", i+1, c)
	}
	return sb.String()
}
