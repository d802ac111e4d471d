package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roomhub/internal/database"
	"roomhub/internal/domain"
	"roomhub/internal/repository"
	"roomhub/internal/schedule"
)

var weekHours = []byte(`{
	"monday":    {"open": "08:00", "close": "20:00"},
	"tuesday":   {"open": "08:00", "close": "20:00"},
	"wednesday": {"open": "08:00", "close": "20:00"},
	"thursday":  {"open": "08:00", "close": "20:00"},
	"friday":    {"open": "08:00", "close": "22:00"},
	"saturday":  {"open": "09:00", "close": "18:00"},
	"sunday":    {"closed": true}
}`)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "roomhub.db"
	}

	db, err := database.Connect(dsn, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect")
	}

	log.Info().Msg("running migrations")
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	log.Info().Msg("cleaning old data")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM organizations")
	db.Exec("DELETE FROM users")

	log.Info().Msg("creating users")
	mustUser(db, "admin@roomhub.fr", "admin123", domain.RoleAdmin, "Admin")
	owner := mustUser(db, "marie@formapro.fr", "owner123", domain.RoleOwner, "Marie Dupont")

	clients := make([]domain.User, 0, 3)
	for i, email := range []string{"paul@exemple.fr", "claire@exemple.fr", "lucas@exemple.fr"} {
		clients = append(clients, mustUser(db, email, "client123",
			domain.RoleClient, fmt.Sprintf("Client %d", i+1)))
	}

	log.Info().Msg("creating organization and rooms")
	org := domain.Organization{
		OwnerID:        owner.ID,
		Name:           "FormaPro Lyon",
		Description:    "Centre de formation professionnelle",
		Address:        "12 rue de la République, Lyon",
		OperatingHours: weekHours,
	}
	db.Create(&org)

	rooms := []domain.Room{
		{OrganizationID: org.ID, Name: "Salle Rhône", Description: "Salle de réunion équipée", Capacity: 12, HourlyRate: 45, IsActive: true},
		{OrganizationID: org.ID, Name: "Salle Saône", Description: "Salle de formation avec projecteur", Capacity: 25, HourlyRate: 80, IsActive: true},
		{OrganizationID: org.ID, Name: "Amphi Presqu'île", Description: "Amphithéâtre", Capacity: 60, HourlyRate: 150, IsActive: true},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	log.Info().Msg("creating sample bookings")
	bookingRepo := repository.NewBookingRepository(db)
	samples := []struct {
		room   domain.Room
		user   domain.User
		date   string
		start  string
		end    string
		status domain.BookingStatus
	}{
		{rooms[0], clients[0], "2026-09-07", "09:00", "11:00", domain.BookingConfirmed},
		{rooms[0], clients[1], "2026-09-07", "11:00", "12:30", domain.BookingPending},
		// Two pending requests fighting over the same slot; the owner
		// resolves these from the conflicts view.
		{rooms[1], clients[1], "2026-09-08", "14:00", "17:00", domain.BookingPending},
		{rooms[1], clients[2], "2026-09-08", "15:00", "18:00", domain.BookingPending},
		{rooms[2], clients[0], "2026-09-11", "18:00", "21:00", domain.BookingConfirmed},
	}
	for _, s := range samples {
		quote, err := schedule.Price(s.room.HourlyRate, s.start, s.end)
		if err != nil {
			log.Fatal().Err(err).Msg("price sample booking")
		}
		b := domain.Booking{
			OrganizationID: org.ID,
			RoomID:         s.room.ID,
			UserID:         s.user.ID,
			Date:           s.date,
			StartTime:      s.start,
			EndTime:        s.end,
			Status:         s.status,
			PaymentStatus:  domain.PaymentPending,
			TotalAmount:    quote.TotalAmount,
			Commission:     quote.Commission,
		}
		if err := bookingRepo.CreateInSlot(context.Background(), &b,
			func([]domain.Booking) error { return nil }); err != nil {
			log.Fatal().Err(err).Msg("seed booking")
		}
	}

	log.Info().Msg("seed done")
	log.Info().Msg("owner login: marie@formapro.fr / owner123")
	log.Info().Msg("client login: paul@exemple.fr / client123")
}

func mustUser(db *gorm.DB, email, password string, role domain.UserRole, name string) domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	db.Create(&u)
	return u
}
