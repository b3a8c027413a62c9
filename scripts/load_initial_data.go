package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"reservations-backend/internal/config"
	"reservations-backend/internal/database"
	"reservations-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	UserName       string `yaml:"user_name"`
	Email          string `yaml:"email"`
	Name           string `yaml:"name"`
	Password       string `yaml:"password"`
	EmailConfirmed bool   `yaml:"email_confirmed"`
}

type OrganizationData struct {
	Name        string `yaml:"name"`
	OwnerName   string `yaml:"owner_name"`
	IsSuspended bool   `yaml:"is_suspended"`
}

type CalendarData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
	OwnerName        string `yaml:"owner_name"`
	TimeZone         string `yaml:"time_zone,omitempty"`
	IsPublic         bool   `yaml:"is_public"`
	MinAttendees     int    `yaml:"min_attendees"`
	MaxAttendees     int    `yaml:"max_attendees"`
	TimeScale        int    `yaml:"time_scale"`
}

type ReservationData struct {
	Name         string    `yaml:"name"`
	CalendarName string    `yaml:"calendar_name"`
	BookerName   string    `yaml:"booker_name"`
	StartFrom    time.Time `yaml:"start_from"`
	EndAt        time.Time `yaml:"end_at"`
	IsWholeDay   bool      `yaml:"is_whole_day"`
	Status       string    `yaml:"status,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type CalendarsFile struct {
	Calendars []CalendarData `yaml:"calendars"`
}

type ReservationsFile struct {
	Reservations []ReservationData `yaml:"reservations"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	calendars, err := loadCalendars(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load calendars: %w", err)
	}

	reservations, err := loadReservations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.UserName, err)
		}
		userMap[userData.UserName] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create organizations with an admin membership for the owner
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create calendars
	calendarMap := make(map[string]*models.Calendar)
	calendarCreated := 0
	for _, calendarData := range calendars {
		calendar, created, err := createCalendar(db, calendarData, orgMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create calendar %s: %w", calendarData.Name, err)
		}
		calendarMap[calendarData.Name] = calendar
		if created {
			calendarCreated++
		}
	}
	log.Printf("Calendars: %d created, %d total", calendarCreated, len(calendars))

	// Create reservations
	reservationCreated := 0
	for _, reservationData := range reservations {
		_, created, err := createReservation(db, reservationData, calendarMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create reservation %s: %v", reservationData.Name, err)
			continue
		}
		if created {
			reservationCreated++
		}
	}
	log.Printf("Reservations: %d created, %d total", reservationCreated, len(reservations))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadCalendars(dataDir string) ([]CalendarData, error) {
	var allCalendars []CalendarData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "calendars") {
			var file CalendarsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCalendars = append(allCalendars, file.Calendars...)
		}
		return nil
	})

	return allCalendars, err
}

func loadReservations(dataDir string) ([]ReservationData, error) {
	var allReservations []ReservationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "reservations") {
			var file ReservationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allReservations = append(allReservations, file.Reservations...)
		}
		return nil
	})

	return allReservations, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("user_name = ?", userData.UserName).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				UserName:       userData.UserName,
				Email:          userData.Email,
				Name:           userData.Name,
				PasswordHash:   string(hash),
				EmailConfirmed: userData.EmailConfirmed,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createOrganization(db *gorm.DB, orgData OrganizationData, userMap map[string]*models.User) (*models.Organization, bool, error) {
	owner := userMap[orgData.OwnerName]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for organization %s", orgData.OwnerName, orgData.Name)
	}

	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				CreatedBy:   owner.ID,
				IsSuspended: orgData.IsSuspended,
			}

			membership := models.OrganizationMembership{
				UserID: owner.ID,
				RoleID: models.RoleAdmin,
			}

			if err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&org).Error; err != nil {
					return err
				}
				membership.OrganizationID = org.ID
				return tx.Create(&membership).Error
			}); err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil
		}
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	return &org, false, nil
}

func createCalendar(db *gorm.DB, calendarData CalendarData, orgMap map[string]*models.Organization, userMap map[string]*models.User) (*models.Calendar, bool, error) {
	org := orgMap[calendarData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for calendar %s", calendarData.OrganizationName, calendarData.Name)
	}

	owner := userMap[calendarData.OwnerName]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for calendar %s", calendarData.OwnerName, calendarData.Name)
	}

	var calendar models.Calendar
	if err := db.Where("name = ? AND organization_id = ?", calendarData.Name, org.ID).First(&calendar).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			timeZone := calendarData.TimeZone
			if timeZone == "" {
				timeZone = "UTC"
			}
			timeScale := calendarData.TimeScale
			if timeScale == 0 {
				timeScale = 30
			}

			calendar = models.Calendar{
				OrganizationID: org.ID,
				Name:           calendarData.Name,
				TimeZone:       timeZone,
				IsPublic:       calendarData.IsPublic,
				MinAttendees:   calendarData.MinAttendees,
				MaxAttendees:   calendarData.MaxAttendees,
				TimeScale:      timeScale,
				CreatedBy:      owner.ID,
			}

			if err := db.Create(&calendar).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create calendar: %w", err)
			}
			return &calendar, true, nil
		}
		return nil, false, fmt.Errorf("failed to query calendar: %w", err)
	}

	return &calendar, false, nil
}

func createReservation(db *gorm.DB, reservationData ReservationData, calendarMap map[string]*models.Calendar, userMap map[string]*models.User) (*models.Reservation, bool, error) {
	calendar := calendarMap[reservationData.CalendarName]
	if calendar == nil {
		return nil, false, fmt.Errorf("calendar %s not found for reservation %s", reservationData.CalendarName, reservationData.Name)
	}

	booker := userMap[reservationData.BookerName]
	if booker == nil {
		return nil, false, fmt.Errorf("booker %s not found for reservation %s", reservationData.BookerName, reservationData.Name)
	}

	var reservation models.Reservation
	if err := db.Where("name = ? AND calendar_id = ?", reservationData.Name, calendar.ID).First(&reservation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ReservationStatus(reservationData.Status)
			if status == "" {
				status = models.ReservationStatusConfirmed
			}

			reservation = models.Reservation{
				CalendarID:     calendar.ID,
				OrganizationID: calendar.OrganizationID,
				Name:           reservationData.Name,
				StartFrom:      reservationData.StartFrom,
				EndAt:          reservationData.EndAt,
				IsWholeDay:     reservationData.IsWholeDay,
				BookerID:       booker.ID,
				Status:         status,
			}

			if err := db.Create(&reservation).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create reservation: %w", err)
			}
			return &reservation, true, nil
		}
		return nil, false, fmt.Errorf("failed to query reservation: %w", err)
	}

	return &reservation, false, nil
}
