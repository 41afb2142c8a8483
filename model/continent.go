package model

// Continent is the continent a Region belongs to.
type Continent string

const (
	ContinentAsia         Continent = "Asia"
	ContinentEurope       Continent = "Europe"
	ContinentNorthAmerica Continent = "North America"
	ContinentAfrica       Continent = "Africa"
	ContinentOceania      Continent = "Oceania"
	ContinentAntarctica   Continent = "Antarctica"
	ContinentSouthAmerica Continent = "South America"
)

// Continents lists every known continent in declaration order.
func Continents() []Continent {
	return []Continent{
		ContinentAsia,
		ContinentEurope,
		ContinentNorthAmerica,
		ContinentAfrica,
		ContinentOceania,
		ContinentAntarctica,
		ContinentSouthAmerica,
	}
}
