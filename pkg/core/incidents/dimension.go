package incidents

// Dimension identifies one categorical field incidents are tallied along.
type Dimension int

const (
	Block Dimension = iota
	CommunityArea
	ZipCode
	IncidentType
	Rounds
	AgeRange
	GunshotInjury
	LocationDescription
	Race
	Sex
)

var dimensionNames = [...]string{
	Block:               "block",
	CommunityArea:       "community_area",
	ZipCode:             "zip_code",
	IncidentType:        "incident_type",
	Rounds:              "rounds",
	AgeRange:            "age_range",
	GunshotInjury:       "gunshot_injury",
	LocationDescription: "location_description",
	Race:                "race",
	Sex:                 "sex",
}

func (d Dimension) String() string {
	if d < 0 || int(d) >= len(dimensionNames) {
		return "unknown"
	}
	return dimensionNames[d]
}

// Dataset names one of the two upstream open-data feeds.
type Dataset string

const (
	Gunfire  Dataset = "shotspotter"
	Violence Dataset = "violence"
)

// Dimensions lists the tables produced for a dataset, in display order.
func (ds Dataset) Dimensions() []Dimension {
	switch ds {
	case Gunfire:
		return []Dimension{IncidentType, Block, CommunityArea, ZipCode, Rounds}
	case Violence:
		return []Dimension{IncidentType, CommunityArea, LocationDescription, Race, Sex, AgeRange, GunshotInjury, ZipCode}
	default:
		return nil
	}
}
