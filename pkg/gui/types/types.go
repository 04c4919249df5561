package types

type MenuItem struct {
	Label string

	// alternative to Label. Allows specifying columns which will be auto-aligned
	LabelColumns []string

	OnPress func() error

	// Only applies when Label is used
	OpensMenu bool

	// when set the item is shown greyed out and pressing it shows this
	// reason instead of running OnPress
	DisabledReason string
}

func (m *MenuItem) Disabled() bool {
	return m.DisabledReason != ""
}
