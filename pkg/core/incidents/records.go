package incidents

import "strings"

// Location is a GeoJSON point as published by the Socrata datasets.
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LatLon returns the point in latitude, longitude order. GeoJSON stores longitude first.
func (l *Location) LatLon() (lat, lon float64, ok bool) {
	if l == nil || len(l.Coordinates) < 2 {
		return 0, 0, false
	}
	return l.Coordinates[1], l.Coordinates[0], true
}

// GunfireRecord is one ShotSpotter alert. Nil fields were absent or null upstream.
type GunfireRecord struct {
	Block         *string   `json:"block"`
	CommunityArea *string   `json:"community_area"`
	Date          *string   `json:"date"`
	IncidentType  *string   `json:"incident_type_description"`
	Rounds        *string   `json:"rounds"`
	ZipCode       *string   `json:"zip_code"`
	Location      *Location `json:"location"`
}

func (r *GunfireRecord) value(d Dimension) *string {
	switch d {
	case Block:
		if r.Block == nil {
			return nil
		}
		block := strings.TrimRight(*r.Block, ",")
		return &block
	case CommunityArea:
		return r.CommunityArea
	case IncidentType:
		return r.IncidentType
	case Rounds:
		return r.Rounds
	case ZipCode:
		return r.ZipCode
	}
	return nil
}

func (r *GunfireRecord) kind() string {
	if r.IncidentType == nil {
		return ""
	}
	return strings.ToLower(*r.IncidentType)
}

// ViolenceRecord is one row of the victims of homicides and non-fatal shootings dataset.
type ViolenceRecord struct {
	Age                 *string   `json:"age"`
	CommunityArea       *string   `json:"community_area"`
	Date                *string   `json:"date"`
	GunshotInjury       *string   `json:"gunshot_injury_i"`
	IUCRCode            *string   `json:"incident_iucr_cd"`
	PrimaryType         *string   `json:"incident_primary"`
	LocationDescription *string   `json:"location_description"`
	Race                *string   `json:"race"`
	Sex                 *string   `json:"sex"`
	FBICode             *string   `json:"victimization_fbi_cd"`
	FBIDescription      *string   `json:"victimization_fbi_descr"`
	ZipCode             *string   `json:"zip_code"`
	Location            *Location `json:"location"`
}

func (r *ViolenceRecord) value(d Dimension) *string {
	switch d {
	case AgeRange:
		return r.Age
	case CommunityArea:
		return r.CommunityArea
	case GunshotInjury:
		return r.GunshotInjury
	case IncidentType:
		if r.IUCRCode == nil {
			return nil
		}
		desc := DescribeIUCR(*r.IUCRCode)
		return &desc
	case LocationDescription:
		return r.LocationDescription
	case Race:
		return r.Race
	case Sex:
		return r.Sex
	case ZipCode:
		return r.ZipCode
	}
	return nil
}
