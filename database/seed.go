package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/auth"
	"github.com/cherryclub/campus-api/utils/phone"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedRegionGroups(); err != nil {
		return fmt.Errorf("failed to seed region groups: %w", err)
	}

	if err := s.SeedUniversities(); err != nil {
		return fmt.Errorf("failed to seed universities: %w", err)
	}

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedRegionGroups creates the canonical region/group reference rows
func (s *Seeder) SeedRegionGroups() error {
	var count int64
	if err := s.db.Model(&model.RegionGroup{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Region groups already exist, skipping...")
		return nil
	}

	regions := []string{
		"서울", "경기인천", "강원", "대전충청",
		"광주전라", "대구경북", "부산경남", "제주", "해외",
	}

	groups := make([]model.RegionGroup, 0, len(regions)*2)
	for _, region := range regions {
		// Every region starts with two subgroups; more are added by admins.
		groups = append(groups,
			model.RegionGroup{Region: region, GroupNumber: 1},
			model.RegionGroup{Region: region, GroupNumber: 2},
		)
	}

	return s.db.Create(&groups).Error
}

// SeedUniversities creates a starter set of campuses with map coordinates
func (s *Seeder) SeedUniversities() error {
	var count int64
	if err := s.db.Model(&model.University{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Universities already exist, skipping...")
		return nil
	}

	universities := []model.University{
		{Name: "서울대학교", Location: "서울", Latitude: 37.4602, Longitude: 126.9520},
		{Name: "연세대학교", Location: "서울", Latitude: 37.5658, Longitude: 126.9386},
		{Name: "고려대학교", Location: "서울", Latitude: 37.5895, Longitude: 127.0323},
		{Name: "인하대학교", Location: "인천", Latitude: 37.4504, Longitude: 126.6546},
		{Name: "강원대학교", Location: "춘천", Latitude: 37.8690, Longitude: 127.7434},
		{Name: "충남대학교", Location: "대전", Latitude: 36.3683, Longitude: 127.3448},
		{Name: "전남대학교", Location: "광주", Latitude: 35.1759, Longitude: 126.9070},
		{Name: "경북대학교", Location: "대구", Latitude: 35.8889, Longitude: 128.6103},
		{Name: "부산대학교", Location: "부산", Latitude: 35.2339, Longitude: 129.0806},
		{Name: "제주대학교", Location: "제주", Latitude: 33.4569, Longitude: 126.5625},
	}

	return s.db.Create(&universities).Error
}

// SeedAdminUser creates the default admin from ADMIN_PHONE/ADMIN_PASSWORD
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("authority >= ?", model.AuthorityAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists, skipping...")
		return nil
	}

	adminPhone := os.Getenv("ADMIN_PHONE")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPhone == "" || adminPassword == "" {
		log.Println("ADMIN_PHONE and ADMIN_PASSWORD not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	var university model.University
	if err := s.db.First(&university).Error; err != nil {
		return fmt.Errorf("seed universities before the admin user: %w", err)
	}

	admin := model.User{
		Name:         "관리자",
		Phone:        phone.Normalize(adminPhone),
		UniversityID: university.ID,
		Authority:    model.AuthorityAdmin,
		PasswordHash: passwordHash,
	}

	return s.db.Create(&admin).Error
}
