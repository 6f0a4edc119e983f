package autocomplete

// Options configures a widget instance. The zero value is usable; unset
// fields fall back to the defaults below, field by field. The Items slice is
// only ever replaced wholesale (by SetItems), never merged.
type Options struct {
	// ValueMatchItem clears the input when the panel hides and the typed
	// text does not exactly equal any known item (case-insensitive). The
	// match is checked against the full item collection, including rows
	// currently filtered out.
	ValueMatchItem bool

	// Items is the ordered suggestion list.
	Items []string

	// MaxPanelRows caps the rows shown at once; the panel scrolls past it.
	MaxPanelRows int

	// OnInit is called once at the end of initialization.
	OnInit func()

	// OnDestroy is called once at the end of Destroy.
	OnDestroy func()
}

// DefaultOptions returns the options used for fields the caller left unset.
func DefaultOptions() Options {
	return Options{
		MaxPanelRows: 8,
	}
}

// applyDefaults merges the caller's options over the defaults. Zero-valued
// fields keep the default; everything else wins over it.
func applyDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.MaxPanelRows <= 0 {
		opts.MaxPanelRows = def.MaxPanelRows
	}
	if opts.Items == nil {
		opts.Items = []string{}
	}
	return opts
}
