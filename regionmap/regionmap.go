// Package regionmap turns the raw club status aggregation into the
// display-ready structure the map widget renders: the canonical region list
// with map placement, leader names, deduplicated campus lists and counts.
package regionmap

import (
	"strings"

	"github.com/cherryclub/campus-api/model"
)

// Region is one map pin: display coordinates are percentages of the map
// image, Leader is maintained by hand, not derived from the database.
type Region struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Count        int      `json:"count"`
	Universities []string `json:"universities"`
	Leader       string   `json:"leader"`
}

// Stat is one headline figure for the status section
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// canonicalRegions is the authoritative list of display regions. Live data
// is matched onto it; regions without live data keep zero counts.
var canonicalRegions = []Region{
	{ID: 1, Name: "서울", X: 30, Y: 22, Leader: "한병국"},
	{ID: 2, Name: "인천/경기", X: 28, Y: 14, Leader: "이주희"},
	{ID: 3, Name: "강원", X: 44, Y: 16, Leader: "이상준"},
	{ID: 4, Name: "대전/충청", X: 30, Y: 38, Leader: "안결하"},
	{ID: 5, Name: "호남", X: 25, Y: 60, Leader: "이상준"},
	{ID: 6, Name: "대구/포항", X: 50, Y: 38, Leader: "정다연"},
	{ID: 7, Name: "창원/부산", X: 53, Y: 57, Leader: "강상아"},
	{ID: 8, Name: "제주", X: 18, Y: 87, Leader: "이상준"},
	{ID: 9, Name: "해외", X: 86, Y: 82, Leader: ""},
}

// regionKeys translates display labels to the aggregation's region keys
var regionKeys = map[string]string{
	"서울":    "서울",
	"인천/경기": "경기인천",
	"강원":    "강원",
	"대전/충청": "대전충청",
	"호남":    "광주전라",
	"대구/포항": "대구경북",
	"창원/부산": "부산경남",
	"제주":    "제주",
}

func regionKey(name string) string {
	if key, ok := regionKeys[name]; ok {
		return key
	}
	return name
}

// Fallback returns a copy of the canonical regions with zero counts
func Fallback() []Region {
	regions := make([]Region, len(canonicalRegions))
	copy(regions, canonicalRegions)
	for i := range regions {
		regions[i].Universities = []string{}
	}
	return regions
}

// Build merges live aggregation output onto the canonical region list.
// University names are deduplicated per region; a region absent from the
// live data keeps a zero count and an empty campus list.
func Build(status *model.ClubStatus) []Region {
	if status == nil || len(status.Universities) == 0 && len(status.MemberCounts) == 0 {
		return Fallback()
	}

	universitySets := make(map[string]map[string]struct{})
	universityOrder := make(map[string][]string)
	for _, item := range status.Universities {
		region := strings.TrimSpace(item.Region)
		university := strings.TrimSpace(item.University)
		if region == "" || university == "" {
			continue
		}

		set, ok := universitySets[region]
		if !ok {
			set = make(map[string]struct{})
			universitySets[region] = set
		}
		if _, seen := set[university]; seen {
			continue
		}
		set[university] = struct{}{}
		universityOrder[region] = append(universityOrder[region], university)
	}

	countByRegion := make(map[string]int)
	for _, item := range status.MemberCounts {
		region := strings.TrimSpace(item.Region)
		if region == "" {
			continue
		}
		countByRegion[region] = item.TotalCount
	}

	regions := Fallback()
	for i := range regions {
		key := regionKey(regions[i].Name)
		if universities, ok := universityOrder[key]; ok {
			regions[i].Universities = universities
		}
		if count, ok := countByRegion[key]; ok {
			regions[i].Count = count
		} else {
			// No live count for the region: fall back to campus count
			regions[i].Count = len(regions[i].Universities)
		}
	}
	return regions
}

// Summarize derives the headline totals: overall member count and the
// number of unique campuses across all regions (the same campus may appear
// in more than one region).
func Summarize(regions []Region, memberCounts []model.RegionMemberCount) []Stat {
	totalMembers := 0
	if len(memberCounts) > 0 {
		for _, item := range memberCounts {
			totalMembers += item.TotalCount
		}
	} else {
		for _, region := range regions {
			totalMembers += region.Count
		}
	}

	unique := make(map[string]struct{})
	for _, region := range regions {
		for _, university := range region.Universities {
			unique[university] = struct{}{}
		}
	}

	return []Stat{
		{Label: "총 회원수", Value: totalMembers},
		{Label: "활동 대학", Value: len(unique)},
	}
}
