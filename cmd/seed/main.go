package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"leadcrm/internal/config"
	"leadcrm/internal/database"
	"leadcrm/internal/domain/campaign"
	"leadcrm/internal/domain/invoice"
	"leadcrm/internal/domain/lead"
	"leadcrm/internal/domain/user"
)

// statusWeights drives the weighted-random status distribution of the
// demo leads.
var statusWeights = []struct {
	status lead.Status
	weight int
}{
	{lead.StatusQuery, 30},
	{lead.StatusInitiated, 10},
	{lead.StatusFollowUp, 20},
	{lead.StatusVisit, 10},
	{lead.StatusWon, 12},
	{lead.StatusLost, 12},
	{lead.StatusNonPotential, 6},
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&user.User{},
		&lead.Lead{},
		&campaign.Campaign{},
		&invoice.Invoice{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM campaigns")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := user.User{
		Name:         "Admin",
		Email:        "admin@leadcrm.pk",
		Role:         user.RoleAdmin,
		Active:       true,
		PasswordHash: string(adminHash),
	}
	db.Create(&admin)
	log.Println("Admin created: admin@leadcrm.pk / admin123")

	consultantNames := []string{"Sara Ahmed", "Bilal Hussain", "Ayesha Malik", "Omar Farooq"}
	consultants := []user.User{}
	for i, name := range consultantNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("consultant123"), bcrypt.DefaultCost)
		u := user.User{
			Name:         name,
			Email:        fmt.Sprintf("consultant%d@leadcrm.pk", i+1),
			Phone:        fmt.Sprintf("030012345%02d", i+10),
			Role:         user.RoleConsultant,
			Active:       i != len(consultantNames)-1, // keep one inactive for testing assignment checks
			PasswordHash: string(hash),
		}
		db.Create(&u)
		consultants = append(consultants, u)
	}

	// ================== LEADS ==================
	log.Println("Creating leads...")

	for i := 0; i < 60; i++ {
		status := pickStatus(rng)
		source := lead.Sources[rng.Intn(len(lead.Sources))]
		city := lead.Cities[rng.Intn(len(lead.Cities))]
		assignee := consultants[rng.Intn(len(consultants)-1)] // active consultants only

		now := time.Now().AddDate(0, 0, -rng.Intn(90))
		phone := fmt.Sprintf("03%09d", rng.Intn(1_000_000_000))

		l := lead.Lead{
			Name:               fmt.Sprintf("Lead %02d", i+1),
			Phone:              phone,
			Email:              lead.PlaceholderEmail(phone, cfg.PlaceholderEmailDomain),
			LeadSource:         source,
			LeadStatus:         status,
			City:               city,
			AssignedUserID:     assignee.ID,
			LeadActiveStatus:   !status.IsClosed(),
			NotificationStatus: true,
			AssignedAt:         now,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if status.IsClosed() {
			l.ClosedAt = &now
		}
		if status == lead.StatusWon {
			l.WonAt = &now
		}
		db.Create(&l)
	}

	log.Println("Seeding done")
}

func pickStatus(rng *rand.Rand) lead.Status {
	total := 0
	for _, sw := range statusWeights {
		total += sw.weight
	}

	n := rng.Intn(total)
	for _, sw := range statusWeights {
		if n < sw.weight {
			return sw.status
		}
		n -= sw.weight
	}
	return lead.StatusQuery
}
