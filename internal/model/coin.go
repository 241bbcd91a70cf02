package model

import "fmt"

// Region is one of the states a quarter can be minted for.
type Region int

// Available Region values.
const (
	Alabama Region = iota
	Alaska
	Arizona
)

var regionNames = [...]string{
	Alabama: "Alabama",
	Alaska:  "Alaska",
	Arizona: "Arizona",
}

func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return fmt.Sprintf("Region(%d)", int(r))
	}

	return regionNames[r]
}

// Regions returns every known region.
func Regions() []Region {
	return []Region{Alabama, Alaska, Arizona}
}

// CoinKind is the denomination of a coin.
type CoinKind int

// Available CoinKind values.
const (
	Penny CoinKind = iota
	Nickel
	Dime
	Quarter
)

func (k CoinKind) String() string {
	switch k {
	case Penny:
		return "Penny"
	case Nickel:
		return "Nickel"
	case Dime:
		return "Dime"
	case Quarter:
		return "Quarter"
	default:
		return fmt.Sprintf("CoinKind(%d)", int(k))
	}
}

// Coin is a denomination. Only quarters carry a region.
type Coin struct {
	Kind   CoinKind
	Region Region
}

// NewPenny returns a penny.
func NewPenny() Coin { return Coin{Kind: Penny} }

// NewNickel returns a nickel.
func NewNickel() Coin { return Coin{Kind: Nickel} }

// NewDime returns a dime.
func NewDime() Coin { return Coin{Kind: Dime} }

// NewQuarter returns a quarter minted for region.
func NewQuarter(region Region) Coin {
	return Coin{Kind: Quarter, Region: region}
}

func (c Coin) String() string {
	if c.Kind == Quarter {
		return fmt.Sprintf("Quarter(%s)", c.Region)
	}

	return c.Kind.String()
}
