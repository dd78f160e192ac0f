// Command seed loads the demo dataset: the sandbox citizens, sample
// complaints, community groups, posts, notifications, schemes, and
// announcements. Safe to run more than once; it skips a database that
// already holds complaints.
package main

import (
	"log"
	"time"

	"fixmycity/internal/config"
	"fixmycity/internal/models"
	"fixmycity/internal/repositories"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	var count int64
	repositories.DB.Model(&models.Complaint{}).Count(&count)
	if count > 0 {
		log.Println("Database already seeded")
		return
	}

	users := seedUsers()
	seedComplaints(users)
	seedGroups(users)
	seedNotifications(users["Akshita"])
	seedLocalInfo()
	seedHeroes()

	log.Println("Demo dataset loaded")
}

func seedUsers() map[string]uint {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Demo@1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	demo := []models.User{
		{Name: "Akshita", Email: "akshita@email.com", Phone: "+91 9876543210", Verified: true},
		{Name: "Rajesh Kumar", Email: "rajesh.kumar@email.com", Phone: "+91 9876543211"},
		{Name: "Priya Sharma", Email: "priya.sharma@email.com", Phone: "+91 9876543212"},
		{Name: "Amit Singh", Email: "amit.singh@email.com", Phone: "+91 9876543213"},
		{Name: "Sunita Devi", Email: "sunita.devi@email.com", Phone: "+91 9876543214"},
	}

	ids := make(map[string]uint, len(demo))
	for i := range demo {
		demo[i].Password = string(hashed)
		demo[i].AuthMethod = models.AuthMethodPassword
		demo[i].Role = "citizen"
		if err := repositories.DB.Create(&demo[i]).Error; err != nil {
			log.Fatal("Failed to create demo user:", err)
		}
		ids[demo[i].Name] = demo[i].ID
	}
	return ids
}

func seedComplaints(users map[string]uint) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 10, 0, 0, 0, time.UTC)
	}

	complaints := []models.Complaint{
		{
			ID:          "CMP001",
			Title:       "Water Supply Issue in Sector 2",
			Description: "No water supply for the past 3 days in our area. Multiple households are affected and we need immediate attention.",
			Category:    "Water & Sewerage",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			SubmitterID: users["Akshita"],
			SubmittedBy: "Akshita",
			Location:    "Sector 2",
			Votes:       23,
			Response:    "Water department has been notified. Repair work will begin within 24 hours.",
			CreatedAt:   day(12),
		},
		{
			ID:          "CMP002",
			Title:       "Street Light Not Working on Main Road",
			Description: "Street lights have been non-functional for over a week, creating safety concerns for pedestrians.",
			Category:    "Street Light Repair",
			Status:      models.StatusResolved,
			Priority:    models.PriorityMedium,
			SubmitterID: users["Akshita"],
			SubmittedBy: "Akshita",
			Location:    "City Center",
			Votes:       8,
			Response:    "Street lights have been repaired and are now functioning properly.",
			CreatedAt:   day(5),
		},
		{
			ID:          "CMP003",
			Title:       "Poor Road Conditions on Main Street",
			Description: "Multiple potholes and damaged road surface making it dangerous for vehicles.",
			Category:    "Road Maintenance",
			Status:      models.StatusPending,
			Priority:    models.PriorityMedium,
			SubmitterID: users["Rajesh Kumar"],
			SubmittedBy: "Rajesh Kumar",
			Location:    "Commercial District",
			Votes:       15,
			CreatedAt:   day(10),
		},
		{
			ID:          "CMP004",
			Title:       "Irregular Garbage Collection",
			Description: "Garbage has not been collected for 5 days in our residential area. Bad smell and hygiene issues.",
			Category:    "Garbage Collection",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			SubmitterID: users["Priya Sharma"],
			SubmittedBy: "Priya Sharma",
			Location:    "Residential Zone A",
			Votes:       31,
			Response:    "Additional garbage trucks have been deployed to clear the backlog.",
			CreatedAt:   day(14),
		},
		{
			ID:          "CMP005",
			Title:       "Power Outage During Peak Hours",
			Description: "Frequent power cuts between 7-9 PM affecting daily activities and business operations.",
			Category:    "Electricity",
			Status:      models.StatusPending,
			Priority:    models.PriorityHigh,
			SubmitterID: users["Amit Singh"],
			SubmittedBy: "Amit Singh",
			Location:    "Industrial Area",
			Votes:       27,
			CreatedAt:   day(11),
		},
		{
			ID:          "CMP006",
			Title:       "Bus Stop Shelter Damaged",
			Description: "The bus stop shelter is broken and provides no protection from rain or sun.",
			Category:    "Transportation",
			Status:      models.StatusResolved,
			Priority:    models.PriorityLow,
			SubmitterID: users["Sunita Devi"],
			SubmittedBy: "Sunita Devi",
			Location:    "Old Town",
			Votes:       12,
			Response:    "New bus stop shelter has been installed and is now operational.",
			CreatedAt:   day(8),
		},
	}

	for i := range complaints {
		if err := repositories.DB.Create(&complaints[i]).Error; err != nil {
			log.Fatal("Failed to create demo complaint:", err)
		}
	}

	// The demo citizen has voted on two of the complaints.
	votes := []models.ComplaintVote{
		{ComplaintID: "CMP001", UserID: users["Akshita"]},
		{ComplaintID: "CMP004", UserID: users["Akshita"]},
	}
	for i := range votes {
		if err := repositories.DB.Create(&votes[i]).Error; err != nil {
			log.Fatal("Failed to create demo vote:", err)
		}
	}
}

func seedGroups(users map[string]uint) {
	now := time.Now()

	groups := []models.CommunityGroup{
		{
			ID:           "CG001",
			Name:         "Water Conservation Group",
			Description:  "Community group focused on water conservation and management initiatives.",
			Category:     "Environment",
			Members:      234,
			Tags:         pq.StringArray{"water", "environment"},
			LastActivity: now.Add(-2 * time.Hour),
		},
		{
			ID:           "CG002",
			Name:         "Local Safety Watch",
			Description:  "Neighborhood watch group ensuring safety and security in our community.",
			Category:     "Safety",
			Members:      156,
			Tags:         pq.StringArray{"safety", "neighborhood"},
			LastActivity: now.Add(-24 * time.Hour),
		},
		{
			ID:           "CG003",
			Name:         "Clean Streets Initiative",
			Description:  "Citizens working together to keep our streets and public spaces clean.",
			Category:     "Cleanliness",
			Members:      89,
			Tags:         pq.StringArray{"cleanliness"},
			LastActivity: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:           "CG004",
			Name:         "Public Transport Improvement",
			Description:  "Advocating for better public transportation services and infrastructure.",
			Category:     "Transportation",
			Members:      178,
			Tags:         pq.StringArray{"transport", "infrastructure"},
			LastActivity: now.Add(-7 * 24 * time.Hour),
		},
	}
	for i := range groups {
		if err := repositories.DB.Create(&groups[i]).Error; err != nil {
			log.Fatal("Failed to create demo group:", err)
		}
	}

	// The demo citizen belongs to two groups.
	memberships := []models.GroupMembership{
		{GroupID: "CG001", UserID: users["Akshita"]},
		{GroupID: "CG003", UserID: users["Akshita"]},
	}
	for i := range memberships {
		if err := repositories.DB.Create(&memberships[i]).Error; err != nil {
			log.Fatal("Failed to create demo membership:", err)
		}
	}

	posts := []models.CommunityPost{
		{
			ID:        "POST001",
			GroupID:   "CG001",
			GroupName: "Water Conservation Group",
			Author:    "Raj Kumar",
			Title:     "Water Tank Maintenance Schedule",
			Content:   "The community water tank will undergo maintenance next Tuesday from 10 AM to 4 PM. Please store water accordingly.",
			Likes:     12,
			Comments:  3,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "POST002",
			GroupID:   "CG002",
			GroupName: "Local Safety Watch",
			Author:    "Priya Sharma",
			Title:     "Increased Patrol Schedule",
			Content:   "Due to recent events, we are increasing our evening patrol schedule. Volunteers needed for the 8 PM - 10 PM slot.",
			Likes:     8,
			Comments:  5,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
	for i := range posts {
		if err := repositories.DB.Create(&posts[i]).Error; err != nil {
			log.Fatal("Failed to create demo post:", err)
		}
	}
}

func seedNotifications(userID uint) {
	now := time.Now()

	notifications := []models.Notification{
		{
			UserID:    userID,
			Title:     "Complaint Status Update",
			Message:   "Your water supply complaint (CMP001) is now being processed.",
			Type:      models.NotificationUpdate,
			Unread:    true,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			UserID:    userID,
			Title:     "Service Announcement",
			Message:   "Healthcare services will be available for free health check-up this weekend.",
			Type:      models.NotificationAnnouncement,
			Unread:    false,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			UserID:    userID,
			Title:     "Profile Verification",
			Message:   "Your profile has been successfully verified.",
			Type:      models.NotificationSuccess,
			Unread:    false,
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
	}
	for i := range notifications {
		if err := repositories.DB.Create(&notifications[i]).Error; err != nil {
			log.Fatal("Failed to create demo notification:", err)
		}
	}
}

func seedLocalInfo() {
	schemes := []models.GovernmentScheme{
		{Name: "Pradhan Mantri Awas Yojana", Description: "Housing scheme for eligible citizens"},
		{Name: "Ayushman Bharat", Description: "Health insurance coverage scheme"},
		{Name: "Digital India", Description: "Digital literacy and services initiative"},
	}
	for i := range schemes {
		if err := repositories.DB.Create(&schemes[i]).Error; err != nil {
			log.Fatal("Failed to create demo scheme:", err)
		}
	}

	announcements := []models.Announcement{
		{
			Title:   "Water Supply Maintenance",
			Message: "Water supply will be interrupted on March 20th from 10 AM to 4 PM for maintenance work.",
			Type:    "info",
			Date:    time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:   "Free Health Check-up Camp",
			Message: "Free health check-up camp at Community Center this weekend. No appointment required.",
			Type:    "success",
			Date:    time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range announcements {
		if err := repositories.DB.Create(&announcements[i]).Error; err != nil {
			log.Fatal("Failed to create demo announcement:", err)
		}
	}
}

func seedHeroes() {
	month := time.Now().Format("January 2006")

	heroes := []models.MonthlyHero{
		{
			Rank:         1,
			Name:         "Dr. Ramesh Gupta",
			Contribution: "Led community water conservation drive",
			Impact:       "500+ families benefited",
			Category:     "Environment",
			Month:        month,
		},
		{
			Rank:         2,
			Name:         "Meera Joshi",
			Contribution: "Organized street cleaning campaign",
			Impact:       "15 streets cleaned",
			Category:     "Cleanliness",
			Month:        month,
		},
		{
			Rank:         3,
			Name:         "Captain Vikram",
			Contribution: "Fire safety awareness program",
			Impact:       "200+ residents trained",
			Category:     "Safety",
			Month:        month,
		},
	}
	for i := range heroes {
		if err := repositories.DB.Create(&heroes[i]).Error; err != nil {
			log.Fatal("Failed to create demo hero:", err)
		}
	}
}
