package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anonymous-574/MediQ/config"
	"github.com/anonymous-574/MediQ/internal/domain/entity"
	"github.com/anonymous-574/MediQ/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var specialties = []string{
	"Cardiology",
	"Dermatology",
	"General Medicine",
	"Orthopedics",
	"Pediatrics",
	"Neurology",
	"ENT",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	hospitals, err := seedHospitals(db, 3)
	if err != nil {
		log.Fatalf("seed hospitals: %v", err)
	}
	if err := seedAdmin(db); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedDoctors(db, hospitals, 10); err != nil {
		log.Fatalf("seed doctors: %v", err)
	}
	if err := seedPatients(db, 50); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	log.Println("seed complete")
}

func seedHospitals(db *gorm.DB, count int) ([]entity.Hospital, error) {
	log.Printf("seeding %d hospitals", count)

	hospitals := make([]entity.Hospital, 0, count)
	for i := 0; i < count; i++ {
		hospital := entity.Hospital{
			HospitalCode: fmt.Sprintf("H-%03d", i+1),
			Name:         gofakeit.Company() + " Hospital",
			Address:      gofakeit.Address().Address,
			Capacity:     gofakeit.Number(100, 500),
			Departments:  strings.Join(specialties, ","),
		}
		if err := db.Create(&hospital).Error; err != nil {
			return nil, err
		}
		hospitals = append(hospitals, hospital)
	}

	log.Println("hospitals seeded")
	return hospitals, nil
}

func seedAdmin(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		RoleID:   entity.RoleIDAdmin,
		Email:    "admin@mediq.local",
		Password: string(hashed),
		FullName: "System Administrator",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("admin seeded")
	return nil
}

func seedDoctors(db *gorm.DB, hospitals []entity.Hospital, count int) error {
	log.Printf("seeding %d doctors", count)

	hashed, err := bcrypt.GenerateFromPassword([]byte("doctor12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		hospital := hospitals[gofakeit.Number(0, len(hospitals)-1)]

		user := entity.User{
			RoleID:   entity.RoleIDDoctor,
			Email:    gofakeit.Email(),
			Password: string(hashed),
			FullName: "Dr. " + gofakeit.Name(),
			Phone:    gofakeit.Phone(),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		profile := entity.DoctorProfile{
			UserID:          user.ID,
			DoctorCode:      fmt.Sprintf("DR-%03d", i+1),
			Specialty:       specialties[gofakeit.Number(0, len(specialties)-1)],
			Qualification:   "MBBS, MD",
			LicenseNumber:   gofakeit.UUID()[:8],
			ExperienceYears: gofakeit.Number(1, 30),
			HospitalID:      &hospital.ID,
		}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}

		if err := seedSlots(db, &profile, hospital.ID); err != nil {
			return err
		}
	}

	log.Println("doctors seeded")
	return nil
}

func seedSlots(db *gorm.DB, doctor *entity.DoctorProfile, hospitalID uuid.UUID) error {
	dayStart := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour).Add(9 * time.Hour)

	for day := 0; day < 5; day++ {
		for slot := 0; slot < 8; slot++ {
			start := dayStart.Add(time.Duration(day) * 24 * time.Hour).Add(time.Duration(slot) * 30 * time.Minute)
			ts := entity.TimeSlot{
				SlotCode:   fmt.Sprintf("TS-%s-%d-%d", doctor.DoctorCode, day, slot),
				DoctorID:   doctor.UserID,
				HospitalID: hospitalID,
				StartTime:  start,
				EndTime:    start.Add(30 * time.Minute),
				SlotType:   entity.SlotTypeConsultation,
			}
			if err := db.Create(&ts).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedPatients(db *gorm.DB, count int) error {
	log.Printf("seeding %d patients", count)

	hashed, err := bcrypt.GenerateFromPassword([]byte("patient12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	registered := true
	for i := 0; i < count; i++ {
		user := entity.User{
			RoleID:   entity.RoleIDPatient,
			Email:    gofakeit.Email(),
			Password: string(hashed),
			FullName: gofakeit.Name(),
			Phone:    gofakeit.Phone(),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		profile := entity.PatientProfile{
			UserID:        user.ID,
			PatientCode:   fmt.Sprintf("P-%04d", i+1),
			DateOfBirth:   gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)),
			Address:       gofakeit.Address().Address,
			IsRegistered:  &registered,
			AccountStatus: entity.PatientStatusActive,
		}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}
	}

	log.Println("patients seeded")
	return nil
}
