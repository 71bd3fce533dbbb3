package simple

// Link is a built canal or rail on a printed connection. Links never
// change once built; canal links all come off the board together at the
// era turnover.
type Link struct {
    A string
    B string
    Era Era
}

func (l Link) Touches(id string) bool {
    return l.A == id || l.B == id
}

func (l Link) Joins(a, b string) bool {
    return (l.A == a && l.B == b) || (l.A == b && l.B == a)
}
