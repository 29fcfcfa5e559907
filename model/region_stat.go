package model

// The club status aggregation output is a pure projection of live
// User/University/RegionGroup state. Nothing here is persisted.

// RegionUniversity is one distinct (region, university) pair with the
// campus map coordinates.
type RegionUniversity struct {
	Region     string  `json:"region"`
	University string  `json:"university"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// RegionMemberCount is the member total for one region
type RegionMemberCount struct {
	Region     string `json:"region"`
	TotalCount int    `json:"totalCount"`
}

// ClubStatus is the wire shape of GET /api/home/clubStatus
type ClubStatus struct {
	Universities []RegionUniversity  `json:"universities"`
	MemberCounts []RegionMemberCount `json:"memberCounts"`
}
