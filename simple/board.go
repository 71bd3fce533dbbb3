package simple

// Connection is a printed corridor between two locations. Links get built
// on top of connections; Eras says which era's link (canal, rail, or
// either) the corridor takes.
type Connection struct {
    A string
    B string
    Eras []Era
}

func (c Connection) SupportsEra(e Era) bool {
    for _, era := range c.Eras {
        if era == e {
            return true
        }
    }
    return false
}

func (c Connection) Joins(a, b string) bool {
    return (c.A == a && c.B == b) || (c.A == b && c.B == a)
}

func (c Connection) Touches(id string) bool {
    return c.A == id || c.B == id
}

type Board struct {
    Name string
    Locations []Location
    Connections []Connection
}

func (b Board) GetLocation(id string) (Location, bool) {
    for _, l := range b.Locations {
        if l.Id == id {
            return l, true
        }
    }
    return Location{}, false
}

// GetConnection finds the printed corridor between two locations, if any.
func (b Board) GetConnection(a, bId string) (Connection, bool) {
    for _, c := range b.Connections {
        if c.Joins(a, bId) {
            return c, true
        }
    }
    return Connection{}, false
}

func (b Board) Merchants() []Location {
    r := []Location{}
    for _, l := range b.Locations {
        if l.Kind == MerchantLocationKind {
            r = append(r, l)
        }
    }
    return r
}

func (b *Board) SetBeer(id string, beer int) {
    for i := range b.Locations {
        if b.Locations[i].Id == id {
            b.Locations[i].Beer = beer
            return
        }
    }
}
