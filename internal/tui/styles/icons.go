package styles

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"

	OpenIcon   string = "▣"
	ClosedIcon string = "□"
	StackIcon  string = "≡"
)
