package fields

// CheckboxField is a boolean toggle. The zero value is unchecked.
type CheckboxField struct {
	Checked bool
}

// Toggle flips the checked state.
func (c *CheckboxField) Toggle() { c.Checked = !c.Checked }
