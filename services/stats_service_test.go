package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cherryclub/campus-api/model"
)

func TestClubStatusServesFallbackOnFailure(t *testing.T) {
	s := &StatsService{}
	s.fetch = func(ctx context.Context) (*model.ClubStatus, error) {
		return nil, errors.New("connection refused")
	}

	status, degraded := s.ClubStatus(context.Background())

	if !degraded {
		t.Fatal("expected the degraded flag when the query fails")
	}
	if status == nil {
		t.Fatal("fallback status must not be nil")
	}
	if len(status.Universities) != 0 {
		t.Errorf("fallback universities = %v, want empty", status.Universities)
	}
	if len(status.MemberCounts) != 9 {
		t.Fatalf("fallback member counts = %d regions, want 9", len(status.MemberCounts))
	}
	for _, count := range status.MemberCounts {
		if count.TotalCount != 0 {
			t.Errorf("fallback count for %s = %d, want 0", count.Region, count.TotalCount)
		}
	}
}

func TestClubStatusPassesLiveDataThrough(t *testing.T) {
	live := &model.ClubStatus{
		Universities: []model.RegionUniversity{
			{Region: "서울", University: "A대"},
		},
		MemberCounts: []model.RegionMemberCount{
			{Region: "서울", TotalCount: 5},
		},
	}

	s := &StatsService{}
	s.fetch = func(ctx context.Context) (*model.ClubStatus, error) {
		return live, nil
	}

	status, degraded := s.ClubStatus(context.Background())

	if degraded {
		t.Fatal("live data must not set the degraded flag")
	}
	if status != live {
		t.Error("live status should be returned unchanged")
	}
}

func TestFallbackClubStatusIsFresh(t *testing.T) {
	a := FallbackClubStatus()
	b := FallbackClubStatus()

	a.MemberCounts[0].TotalCount = 99
	if b.MemberCounts[0].TotalCount != 0 {
		t.Error("fallback datasets must not share state between calls")
	}
}
