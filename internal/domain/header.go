package domain

// ScrollThreshold is the vertical scroll offset, in pixels, past which the
// navigation bar switches to its filled background.
const ScrollThreshold = 60

type NavVariant string

const (
	NavTop    NavVariant = "top"
	NavScroll NavVariant = "scroll"
)

// BackgroundColor is the nav bar fill for the variant.
func (v NavVariant) BackgroundColor() string {
	if v == NavScroll {
		return "rgba(0,0,0,1)"
	}

	return "rgba(0,0,0,0)"
}

func NavVariantFor(scrollY float64) NavVariant {
	if scrollY < ScrollThreshold {
		return NavTop
	}

	return NavScroll
}

// Header is the per-visitor state of the navigation bar. The search input
// visibility is independent of the scroll variant.
type Header struct {
	SearchOpen bool `json:"searchOpen"`
}

func (h *Header) ToggleSearch() {
	h.SearchOpen = !h.SearchOpen
}

// InputScaleX is the horizontal scale the search input animates to.
func (h Header) InputScaleX() int {
	if h.SearchOpen {
		return 1
	}

	return 0
}

// IconOffsetX is the horizontal offset the search icon slides to.
func (h Header) IconOffsetX() int {
	if h.SearchOpen {
		return -180
	}

	return 0
}

type NavItem string

const (
	NavNone NavItem = ""
	NavHome NavItem = "home"
	NavTV   NavItem = "tv"
)

// ActiveNav returns the nav item underlined for the path. Only exact matches
// count, so a details route underlines nothing.
func ActiveNav(path string) NavItem {
	switch path {
	case "/":
		return NavHome
	case "/tv":
		return NavTV
	default:
		return NavNone
	}
}
