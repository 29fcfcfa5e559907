package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/model"
)

type clubStatusFetcher func(ctx context.Context) (*model.ClubStatus, error)

// StatsService produces the per-region membership aggregation. Any database
// failure degrades to a static placeholder dataset so the map widget never
// hard-fails; there are no retries.
type StatsService struct {
	db    *gorm.DB
	fetch clubStatusFetcher
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	s := &StatsService{db: db}
	s.fetch = s.queryClubStatus
	return s
}

// ClubStatus returns the live aggregation, or the fallback dataset when the
// query fails. The second return value reports whether the fallback was used.
func (s *StatsService) ClubStatus(ctx context.Context) (*model.ClubStatus, bool) {
	status, err := s.fetch(ctx)
	if err != nil {
		log.Printf("club status aggregation failed, serving fallback: %v", err)
		return FallbackClubStatus(), true
	}
	return status, false
}

// queryClubStatus runs the two aggregation queries against the normalized
// schema. Users without a region group (unset or graduated) are excluded.
func (s *StatsService) queryClubStatus(ctx context.Context) (*model.ClubStatus, error) {
	universities := []model.RegionUniversity{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			rg.region,
			univ.name AS university,
			univ.latitude,
			univ.longitude
		FROM users u
		JOIN region_groups rg ON rg.id = u.region_group_id
		JOIN universities univ ON univ.id = u.university_id
		WHERE u.deleted_at IS NULL
		ORDER BY rg.region, university`).Scan(&universities).Error
	if err != nil {
		return nil, err
	}

	memberCounts := []model.RegionMemberCount{}
	err = s.db.WithContext(ctx).Raw(`
		SELECT
			rg.region,
			COUNT(*) AS total_count
		FROM users u
		JOIN region_groups rg ON rg.id = u.region_group_id
		WHERE u.deleted_at IS NULL
		GROUP BY rg.region
		ORDER BY rg.region`).Scan(&memberCounts).Error
	if err != nil {
		return nil, err
	}

	return &model.ClubStatus{
		Universities: universities,
		MemberCounts: memberCounts,
	}, nil
}

// FallbackClubStatus is the static placeholder served when the database is
// unreachable: every canonical region with a zero count and no campuses.
func FallbackClubStatus() *model.ClubStatus {
	regions := []string{
		"서울", "경기인천", "강원", "대전충청",
		"광주전라", "대구경북", "부산경남", "제주", "해외",
	}

	counts := make([]model.RegionMemberCount, 0, len(regions))
	for _, r := range regions {
		counts = append(counts, model.RegionMemberCount{Region: r, TotalCount: 0})
	}

	return &model.ClubStatus{
		Universities: []model.RegionUniversity{},
		MemberCounts: counts,
	}
}
