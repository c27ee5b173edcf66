package lexmodel

// SlotValue returns the interpreted value of the named slot, or "" when the
// slot is absent, null, or present without a value.
func (i *Intent) SlotValue(name string) string {
	if i == nil || i.Slots == nil {
		return ""
	}
	s, ok := i.Slots[name]
	if !ok || s == nil || s.Value == nil {
		return ""
	}
	return s.Value.InterpretedValue
}

// HasSlot reports whether the named slot is present with a non-null entry.
// The platform sends a null entry for slots it knows about but has not
// filled; those do not count.
func (i *Intent) HasSlot(name string) bool {
	if i == nil || i.Slots == nil {
		return false
	}
	return i.Slots[name] != nil
}

// ClearSlot nulls out the named slot so the platform re-prompts for it.
func (i *Intent) ClearSlot(name string) {
	if i == nil {
		return
	}
	if i.Slots == nil {
		i.Slots = make(map[string]*Slot)
	}
	i.Slots[name] = nil
}

// ResetSlots drops every slot value from the intent.
func (i *Intent) ResetSlots() {
	if i == nil {
		return
	}
	i.Slots = make(map[string]*Slot)
}

// NewScalarSlot builds a filled scalar slot where interpreted, original and
// resolved values all agree, as when slots are pre-populated from carryover
// context rather than user input.
func NewScalarSlot(value string) *Slot {
	return &Slot{
		Shape: "Scalar",
		Value: &SlotValue{
			InterpretedValue: value,
			OriginalValue:    value,
			ResolvedValues:   []string{value},
		},
	}
}
