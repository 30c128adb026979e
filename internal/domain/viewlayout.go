package domain

// ViewLayout identifies how the order panel is currently rendering its
// list items. The layout is detected once per polling cycle by the
// caller's capability check and passed down explicitly.
type ViewLayout int

const (
	// LayoutBasic renders one compact text block per order.
	LayoutBasic ViewLayout = iota
	// LayoutExpanded renders head, status, body and footer blocks per order.
	LayoutExpanded
)

func (v ViewLayout) String() string {
	switch v {
	case LayoutBasic:
		return "BASIC"
	case LayoutExpanded:
		return "EXPANDED"
	default:
		return "unknown"
	}
}
