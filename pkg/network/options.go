package network

// OptionInputMode selects the input format a backend reports in its
// capabilities.
const OptionInputMode = "input_mode"

// Options carries backend tuning values keyed by option name.
type Options map[string]int

// IntOr returns the option named name, or def when it is unset.
func (o Options) IntOr(name string, def int) int {
	if v, ok := o[name]; ok {
		return v
	}
	return def
}
