package simple

// NewBirminghamBoard is the West Midlands map: twenty cities, five edge
// merchants, and the printed canal/rail corridors between them. Slot order
// within a city is the printed order and the build rules depend on it.
func NewBirminghamBoard() Board {
    return Board{
        Name: "Birmingham",
        Locations: []Location{
            Location{
                Id: "birmingham",
                Name: "Birmingham",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType, ManufacturerIndustryType}},
                    Slot{Types: []IndustryType{ManufacturerIndustryType}},
                    Slot{Types: []IndustryType{IronIndustryType}},
                    Slot{Types: []IndustryType{ManufacturerIndustryType}},
                },
            },
            Location{
                Id: "coventry",
                Name: "Coventry",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType}},
                    Slot{Types: []IndustryType{CoalIndustryType}},
                    Slot{Types: []IndustryType{IronIndustryType, ManufacturerIndustryType}},
                },
            },
            Location{
                Id: "dudley",
                Name: "Dudley",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CoalIndustryType}},
                    Slot{Types: []IndustryType{IronIndustryType}},
                },
            },
            Location{
                Id: "kidderminster",
                Name: "Kidderminster",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType}},
                    Slot{Types: []IndustryType{CottonIndustryType, CoalIndustryType}},
                },
            },
            Location{
                Id: "wolverhampton",
                Name: "Wolverhampton",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType}},
                    Slot{Types: []IndustryType{CoalIndustryType, IronIndustryType}},
                },
            },
            Location{
                Id: "worcester",
                Name: "Worcester",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType}},
                    Slot{Types: []IndustryType{CottonIndustryType}},
                },
            },
            Location{
                Id: "redditch",
                Name: "Redditch",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType, CoalIndustryType}},
                    Slot{Types: []IndustryType{IronIndustryType}},
                },
            },
            Location{
                Id: "nuneaton",
                Name: "Nuneaton",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType, BreweryIndustryType}},
                    Slot{Types: []IndustryType{CoalIndustryType}},
                },
            },
            Location{
                Id: "tamworth",
                Name: "Tamworth",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType, CoalIndustryType}},
                    Slot{Types: []IndustryType{CottonIndustryType, CoalIndustryType}},
                },
            },
            Location{
                Id: "walsall",
                Name: "Walsall",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{IronIndustryType, ManufacturerIndustryType}},
                    Slot{Types: []IndustryType{ManufacturerIndustryType, BreweryIndustryType}},
                },
            },
            Location{
                Id: "coalbrookdale",
                Name: "Coalbrookdale",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{IronIndustryType, BreweryIndustryType}},
                    Slot{Types: []IndustryType{IronIndustryType}},
                    Slot{Types: []IndustryType{CoalIndustryType}},
                },
            },
            Location{
                Id: "stone",
                Name: "Stone",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType, BreweryIndustryType}},
                    Slot{Types: []IndustryType{ManufacturerIndustryType, CoalIndustryType}},
                },
            },
            Location{
                Id: "stafford",
                Name: "Stafford",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType, BreweryIndustryType}},
                    Slot{Types: []IndustryType{PotteryIndustryType}},
                },
            },
            Location{
                Id: "cannock",
                Name: "Cannock",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType, CoalIndustryType}},
                    Slot{Types: []IndustryType{CoalIndustryType}},
                },
            },
            Location{
                Id: "stoke",
                Name: "Stoke-on-Trent",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{PotteryIndustryType, IronIndustryType}},
                    Slot{Types: []IndustryType{PotteryIndustryType, CoalIndustryType}},
                    Slot{Types: []IndustryType{ManufacturerIndustryType, BreweryIndustryType}},
                },
            },
            Location{
                Id: "leek",
                Name: "Leek",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType, ManufacturerIndustryType}},
                    Slot{Types: []IndustryType{CottonIndustryType, CoalIndustryType}},
                },
            },
            Location{
                Id: "uttoxeter",
                Name: "Uttoxeter",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType, BreweryIndustryType}},
                    Slot{Types: []IndustryType{CottonIndustryType, BreweryIndustryType}},
                },
            },
            Location{
                Id: "burton",
                Name: "Burton-upon-Trent",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{ManufacturerIndustryType, CoalIndustryType}},
                    Slot{Types: []IndustryType{BreweryIndustryType}},
                },
            },
            Location{
                Id: "derby",
                Name: "Derby",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType, BreweryIndustryType}},
                    Slot{Types: []IndustryType{CoalIndustryType, IronIndustryType}},
                    Slot{Types: []IndustryType{ManufacturerIndustryType}},
                },
            },
            Location{
                Id: "belper",
                Name: "Belper",
                Kind: CityLocationKind,
                Slots: []Slot{
                    Slot{Types: []IndustryType{CottonIndustryType, ManufacturerIndustryType}},
                    Slot{Types: []IndustryType{CoalIndustryType}},
                    Slot{Types: []IndustryType{PotteryIndustryType}},
                },
            },
            Location{
                Id: "warrington",
                Name: "Warrington",
                Kind: MerchantLocationKind,
                Beer: 1,
            },
            Location{
                Id: "nottingham",
                Name: "Nottingham",
                Kind: MerchantLocationKind,
                Beer: 1,
            },
            Location{
                Id: "shrewsbury",
                Name: "Shrewsbury",
                Kind: MerchantLocationKind,
                Beer: 1,
            },
            Location{
                Id: "oxford",
                Name: "Oxford",
                Kind: MerchantLocationKind,
                Beer: 1,
            },
            Location{
                Id: "gloucester",
                Name: "Gloucester",
                Kind: MerchantLocationKind,
                Beer: 1,
            },
        },
        Connections: []Connection{
            Connection{A: "stoke", B: "warrington", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "stoke", B: "leek", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "stoke", B: "stone", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "stoke", B: "uttoxeter", Eras: []Era{RailEra}},
            Connection{A: "leek", B: "belper", Eras: []Era{RailEra}},
            Connection{A: "stone", B: "stafford", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "stone", B: "burton", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "uttoxeter", B: "derby", Eras: []Era{RailEra}},
            Connection{A: "belper", B: "derby", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "derby", B: "nottingham", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "derby", B: "burton", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "burton", B: "tamworth", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "burton", B: "walsall", Eras: []Era{CanalEra}},
            Connection{A: "stafford", B: "cannock", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "cannock", B: "wolverhampton", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "cannock", B: "walsall", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "tamworth", B: "birmingham", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "tamworth", B: "nuneaton", Eras: []Era{RailEra}},
            Connection{A: "nuneaton", B: "coventry", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "nuneaton", B: "birmingham", Eras: []Era{RailEra}},
            Connection{A: "coventry", B: "birmingham", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "coventry", B: "oxford", Eras: []Era{CanalEra}},
            Connection{A: "birmingham", B: "oxford", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "birmingham", B: "worcester", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "birmingham", B: "redditch", Eras: []Era{RailEra}},
            Connection{A: "birmingham", B: "dudley", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "birmingham", B: "walsall", Eras: []Era{CanalEra}},
            Connection{A: "redditch", B: "oxford", Eras: []Era{RailEra}},
            Connection{A: "walsall", B: "wolverhampton", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "wolverhampton", B: "coalbrookdale", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "wolverhampton", B: "dudley", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "dudley", B: "kidderminster", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "kidderminster", B: "worcester", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "kidderminster", B: "coalbrookdale", Eras: []Era{RailEra}},
            Connection{A: "coalbrookdale", B: "shrewsbury", Eras: []Era{CanalEra, RailEra}},
            Connection{A: "worcester", B: "gloucester", Eras: []Era{CanalEra, RailEra}},
        },
    }
}
