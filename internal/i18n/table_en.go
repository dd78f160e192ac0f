package i18n

var en = map[string]string{
	// Header
	"appName":    "Fix My City",
	"appTagline": "Citizen Empowerment Platform",

	// Navigation
	"dashboard":     "Dashboard",
	"services":      "Services",
	"complaints":    "Complaints",
	"community":     "Community",
	"profile":       "Profile",
	"leaderboard":   "Leaderboard",
	"notifications": "Notifications",
	"info":          "Information",

	// Dashboard
	"welcomeBack":         "Welcome back, Akshita",
	"verifiedCitizen":     "Verified Citizen",
	"servicesAvailable":   "Services Available",
	"activeComplaints":    "Active Complaints",
	"communityGroups":     "Community Groups",
	"leaderboardRank":     "Leaderboard Rank",
	"recentActivities":    "Recent Activities",
	"quickActions":        "Quick Actions",
	"browseServices":      "Browse Services",
	"lodgeComplaint":      "Lodge Complaint",
	"updateProfile":       "Update Profile",
	"yourAchievements":    "Your Achievements",
	"topContributor":      "Top Contributor",
	"complaintsSubmitted": "complaints submitted",
	"thisMonth":           "This month",
	"resolutionRate":      "Resolution Rate",
	"resolvedIssues":      "Resolved Issues",

	// Services
	"serviceDirectory":     "Service Directory",
	"serviceDirectoryDesc": "Browse all government services available to citizens",
	"searchServices":       "Search services...",
	"filter":               "Filter",
	"totalServices":        "Total Services",
	"emergencyServices":    "Emergency Services",
	"categories":           "Categories",
	"digitalServices":      "Digital Services",
	"online":               "Online",
	"active":               "Active",
	"available":            "Available",
	"seasonal":             "Seasonal",
	"apply":                "Apply",
	"onlineAvailable":      "Online Available",
	"help":                 "Help",
	"onlinePortal":         "Online Portal",
	"visitLocalOffice":     "Visit Local Office",
	"police":               "Police",
	"fireDepartment":       "Fire Department",
	"medicalEmergency":     "Medical Emergency",

	// Complaints
	"complaintsManagement": "Complaints Management",
	"complaintsDesc":       "Track and manage your service complaints",
	"newComplaint":         "New Complaint",
	"myComplaints":         "My Complaints",
	"allComplaints":        "All Complaints",
	"searchComplaints":     "Search complaints...",

	// Community
	"communityDesc": "Connect with local groups and participate in community initiatives",
	"joinGroup":     "Join Group",
	"viewGroup":     "View Group",
	"members":       "members",

	// Profile
	"citizenProfile": "Citizen Profile",
	"personalInfo":   "Personal Information",
	"contactDetails": "Contact Details",
	"preferences":    "Preferences",
	"settings":       "Settings",

	// Language
	"language":       "Language",
	"selectLanguage": "Select Language",
	"changeLanguage": "Change Language",

	// Voice Input
	"voiceInput":     "Voice Input",
	"textInput":      "Text Input",
	"voiceComplaint": "Voice Complaint",
	"shareToApps":    "Share to Apps",
	"reportIssue":    "Report an Issue",
	"foundProblem":   "Found a problem in your area? Help us make your city better by reporting it.",

	// Common
	"loading":     "Loading...",
	"save":        "Save",
	"cancel":      "Cancel",
	"submit":      "Submit",
	"close":       "Close",
	"edit":        "Edit",
	"delete":      "Delete",
	"view":        "View",
	"share":       "Share",
	"vote":        "Vote",
	"status":      "Status",
	"priority":    "Priority",
	"category":    "Category",
	"location":    "Location",
	"date":        "Date",
	"description": "Description",
	"high":        "High",
	"medium":      "Medium",
	"low":         "Low",
	"pending":     "Pending",
	"inProgress":  "In Progress",
	"resolved":    "Resolved",
	"completed":   "Completed",
}
