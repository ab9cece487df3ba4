package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"parish-be/internal/model"
	"parish-be/pkg/database"
)

// Seeds the admin account and a starter data set so a fresh install has
// something to show. Safe to re-run: every insert checks for an existing row
// first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	seedAdmin(db)
	seedSchedules(db)
	seedScheduleNote(db)
	seedAnnouncements(db)
	seedDonations(db)
	seedRecords(db)
	seedRequests(db)

	color.Green("✅ Seeding complete.")
}

func seedAdmin(db *gorm.DB) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		color.Yellow("Warn: ADMIN_PASSWORD not set, using the default. Change it.")
	}

	var count int64
	db.Model(&model.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		color.Cyan("Skip: admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error: failed to hash admin password: %v", err)
		os.Exit(1)
	}

	admin := model.User{
		Id:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("Error: failed to create admin user: %v", err)
		os.Exit(1)
	}
	color.Green("Seeded: admin user")
}

func seedSchedules(db *gorm.DB) {
	var count int64
	db.Model(&model.MassSchedule{}).Count(&count)
	if count > 0 {
		color.Cyan("Skip: mass schedules already present")
		return
	}

	schedules := []model.MassSchedule{
		{Id: uuid.New(), Day: "Sunday", Time: "06:00 AM", Description: "Misa Pro Populo (Cebuano)", Location: "Main Church"},
		{Id: uuid.New(), Day: "Sunday", Time: "08:30 AM", Description: "English Mass", Location: "Main Church"},
		{Id: uuid.New(), Day: "Sunday", Time: "04:30 PM", Description: "Youth Mass", Location: "Main Church"},
		{Id: uuid.New(), Day: "Wednesday", Time: "05:30 PM", Description: "Novena to Our Lady of the Miraculous Medal", Location: "Main Church"},
		{Id: uuid.New(), Day: "First Friday", Time: "05:00 PM", Description: "Holy Hour & Mass", Location: "Main Church"},
	}
	if err := db.Create(&schedules).Error; err != nil {
		color.Red("Error: failed to seed schedules: %v", err)
		return
	}
	color.Green("Seeded: %d mass schedules", len(schedules))
}

func seedScheduleNote(db *gorm.DB) {
	var count int64
	db.Model(&model.ScheduleNote{}).Count(&count)
	if count > 0 {
		color.Cyan("Skip: schedule note already present")
		return
	}

	note := model.ScheduleNote{
		Id:    uuid.New(),
		Title: "Confession Schedule",
		Body:  "The Sacrament of Reconciliation is available every Wednesday after the Novena Mass, or by appointment at the parish office.",
	}
	if err := db.Create(&note).Error; err != nil {
		color.Red("Error: failed to seed schedule note: %v", err)
		return
	}
	color.Green("Seeded: schedule note")
}

func seedAnnouncements(db *gorm.DB) {
	var count int64
	db.Model(&model.Announcement{}).Count(&count)
	if count > 0 {
		color.Cyan("Skip: announcements already present")
		return
	}

	fiestaImage := "https://images.unsplash.com/photo-1517457373958-b7bdd4587205?auto=format&fit=crop&w=800&q=80"
	announcements := []model.Announcement{
		{
			Id:       uuid.New(),
			Title:    "Parish Fiesta Preparation",
			Content:  "The committee meeting for the upcoming fiesta will be held this Saturday at 2 PM in the Parish Hall.",
			Date:     dateOf(2023, 11, 10),
			IsPublic: true,
			ImageUrl: &fiestaImage,
		},
		{
			Id:       uuid.New(),
			Title:    "Call for Choir Members",
			Content:  "We are inviting young people to join the grand choir for the Christmas season.",
			Date:     dateOf(2023, 11, 12),
			IsPublic: true,
		},
	}
	if err := db.Create(&announcements).Error; err != nil {
		color.Red("Error: failed to seed announcements: %v", err)
		return
	}
	color.Green("Seeded: %d announcements", len(announcements))
}

func seedDonations(db *gorm.DB) {
	var count int64
	db.Model(&model.Donation{}).Count(&count)
	if count > 0 {
		color.Cyan("Skip: donations already present")
		return
	}

	donations := []model.Donation{
		{Id: uuid.New(), DonorName: "Family of Mr. & Mrs. Reyes", Amount: "₱10,000", Purpose: "Church Renovation Fund", Date: dateOf(2023, 10, 1)},
		{Id: uuid.New(), DonorName: "Anonymous", Amount: "₱2,000", Purpose: "Sunday Collection", Date: dateOf(2023, 10, 5), IsAnonymous: true},
		{Id: uuid.New(), DonorName: "San Miguel Corp.", Amount: "50 Sacks of Cement", Purpose: "Construction Materials", Date: dateOf(2023, 10, 15)},
	}
	if err := db.Create(&donations).Error; err != nil {
		color.Red("Error: failed to seed donations: %v", err)
		return
	}
	color.Green("Seeded: %d donations", len(donations))
}

func seedRecords(db *gorm.DB) {
	var count int64
	db.Model(&model.SacramentRecord{}).Count(&count)
	if count > 0 {
		color.Cyan("Skip: sacrament records already present")
		return
	}

	archivedAt := time.Now()
	archivedBy := "admin"
	archiveReason := "Duplicate entry"

	records := []model.SacramentRecord{
		{Id: uuid.New(), Name: "Maria Santos", Date: dateOf(2023, 10, 15), Type: "BAPTISM", Officiant: "Fr. Juan Dela Cruz", Details: "Parents: Jose & Ana Santos"},
		{Id: uuid.New(), Name: "Pedro & Elena Reyes", Date: dateOf(2023, 11, 2), Type: "MARRIAGE", Officiant: "Fr. Juan Dela Cruz", Details: "Witnesses: Mr. & Mrs. Gomez"},
		{Id: uuid.New(), Name: "Sofia Garcia", Date: dateOf(2023, 5, 20), Type: "CONFIRMATION", Officiant: "Bp. Ricardo Alarcon", Details: "Sponsor: Teresa Dizon"},
		{
			Id: uuid.New(), Name: "Sofia Garcia", Date: dateOf(2023, 5, 20), Type: "CONFIRMATION",
			Officiant: "Bp. Ricardo Alarcon", Details: "Sponsor: Teresa Dizon",
			IsArchived: true, ArchivedAt: &archivedAt, ArchivedBy: &archivedBy, ArchiveReason: &archiveReason,
		},
	}
	if err := db.Create(&records).Error; err != nil {
		color.Red("Error: failed to seed records: %v", err)
		return
	}
	color.Green("Seeded: %d sacrament records", len(records))
}

func seedRequests(db *gorm.DB) {
	var count int64
	db.Model(&model.ServiceRequest{}).Count(&count)
	if count > 0 {
		color.Cyan("Skip: service requests already present")
		return
	}

	preferredDate := "2023-12-10"
	confirmedSchedule := "2023-12-10 10:00 AM"
	adminNotes := "Requirements submitted. Seminars attended."
	completedRequestId := uuid.New()

	requests := []model.ServiceRequest{
		{
			Id:             uuid.New(),
			Category:       "CERTIFICATE",
			ServiceType:    "Baptismal Certificate",
			RequesterName:  "Juan Dela Cruz",
			ContactInfo:    "juan@email.com",
			Details:        "For local employment purposes. Baptized year 1998.",
			Status:         "PENDING",
			SubmissionDate: dateOf(2023, 11, 15),
		},
		{
			Id:                uuid.New(),
			Category:          "SACRAMENT",
			ServiceType:       "Baptism",
			RequesterName:     "Ana Smith",
			ContactInfo:       "09171234567",
			Details:           "Child: Baby Boy Smith. We are available on Sunday mornings.",
			PreferredDate:     &preferredDate,
			Status:            "SCHEDULED",
			ConfirmedSchedule: &confirmedSchedule,
			AdminNotes:        &adminNotes,
			SubmissionDate:    dateOf(2023, 11, 14),
		},
		{
			Id:             completedRequestId,
			Category:       "CERTIFICATE",
			ServiceType:    "Baptismal Certificate",
			RequesterName:  "Maria Dizon",
			ContactInfo:    "maria.dizon@email.com",
			Details:        "Carlos Dizon, baptized 1995. Needed for school enrollment.",
			Status:         "COMPLETED",
			SubmissionDate: dateOf(2023, 10, 18),
		},
	}
	if err := db.Create(&requests).Error; err != nil {
		color.Red("Error: failed to seed requests: %v", err)
		return
	}

	notes := "ID Presented"
	cert := model.IssuedCertificate{
		Id:             uuid.New(),
		RequestId:      completedRequestId,
		Type:           "Baptismal Certificate",
		RecipientName:  "Carlos Dizon",
		RequesterName:  "Maria Dizon",
		DateIssued:     dateOf(2023, 10, 20),
		IssuedBy:       "Administrator",
		DeliveryMethod: "PICKUP",
		Notes:          &notes,
		Status:         "PENDING_UPLOAD",
	}
	if err := db.Create(&cert).Error; err != nil {
		color.Red("Error: failed to seed issued certificate: %v", err)
		return
	}

	color.Green("Seeded: %d service requests, 1 issued certificate", len(requests))
}

func dateOf(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}
