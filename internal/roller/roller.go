// Package roller generates random parties.
package roller

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/dmitrijs2005/partykeeper/internal/models"
)

const (
	DefaultMaxPartySize = 4
	DefaultMaxEquipment = 20
	// NumClasses is the number of character classes; class ids are 1..NumClasses.
	NumClasses = 6
	// maxItems is the most equipment a rolled character carries.
	maxItems = 3
)

// Roller builds parties from dice rolls.
type Roller struct {
	dice         dice.Roller
	maxPartySize int
	maxEquipment int
}

// Option configures a Roller.
type Option func(*Roller)

// WithMaxPartySize caps the number of characters per party. Values below 1
// are ignored.
func WithMaxPartySize(n int) Option {
	return func(r *Roller) {
		if n > 0 {
			r.maxPartySize = n
		}
	}
}

// WithMaxEquipment sets the highest equipment id handed out. Values below 1
// are ignored.
func WithMaxEquipment(n int) Option {
	return func(r *Roller) {
		if n > 0 {
			r.maxEquipment = n
		}
	}
}

// New returns a Roller over d; a nil d uses dice.DefaultRoller.
func New(d dice.Roller, opts ...Option) *Roller {
	if d == nil {
		d = dice.DefaultRoller
	}
	r := &Roller{
		dice:         d,
		maxPartySize: DefaultMaxPartySize,
		maxEquipment: DefaultMaxEquipment,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Party rolls a party of 1 to the configured maximum characters.
func (r *Roller) Party() (models.Party, error) {
	size, err := r.dice.Roll(r.maxPartySize)
	if err != nil {
		return models.Party{}, fmt.Errorf("roll party size: %w", err)
	}

	chars := make([]models.Character, 0, size)
	for range size {
		c, err := r.Character()
		if err != nil {
			return models.Party{}, err
		}
		chars = append(chars, c)
	}
	return models.NewParty(chars...), nil
}

// Character rolls one character: class 1dN, health and mana 2d10, the
// three attributes 3d6 each, and 0 to 3 pieces of equipment.
func (r *Roller) Character() (models.Character, error) {
	var c models.Character
	var err error

	if c.ClassID, err = r.dice.Roll(NumClasses); err != nil {
		return c, fmt.Errorf("roll class: %w", err)
	}
	if c.Health, err = r.sum(2, 10); err != nil {
		return c, fmt.Errorf("roll health: %w", err)
	}
	if c.Mana, err = r.sum(2, 10); err != nil {
		return c, fmt.Errorf("roll mana: %w", err)
	}
	if c.Strength, err = r.sum(3, 6); err != nil {
		return c, fmt.Errorf("roll strength: %w", err)
	}
	if c.Agility, err = r.sum(3, 6); err != nil {
		return c, fmt.Errorf("roll agility: %w", err)
	}
	if c.Wisdom, err = r.sum(3, 6); err != nil {
		return c, fmt.Errorf("roll wisdom: %w", err)
	}

	n, err := r.dice.Roll(maxItems + 1)
	if err != nil {
		return c, fmt.Errorf("roll equipment count: %w", err)
	}
	n-- // 0..maxItems
	if n > 0 {
		items, err := r.dice.RollN(n, r.maxEquipment)
		if err != nil {
			return c, fmt.Errorf("roll equipment: %w", err)
		}
		c.Equipment = items
	}
	return c, nil
}

func (r *Roller) sum(count, size int) (int, error) {
	rolls, err := r.dice.RollN(count, size)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total, nil
}
