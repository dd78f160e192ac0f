package i18n

// Tamil table. Keys absent here resolve through the English fallback.
var ta = map[string]string{
	// Header
	"appName":    "ஃபிக்ஸ் மை சிட்டி",
	"appTagline": "குடிமக்கள் அதிகாரமளிக்கும் தளம்",

	// Navigation
	"dashboard":     "டாஷ்போர்டு",
	"services":      "சேவைகள்",
	"complaints":    "புகார்கள்",
	"community":     "சமூகம்",
	"profile":       "சுயவிவரம்",
	"leaderboard":   "லீடர்போர்டு",
	"notifications": "அறிவிப்புகள்",
	"info":          "தகவல்",

	// Dashboard
	"welcomeBack":         "மீண்டும் வருக, அக்ஷிதா",
	"verifiedCitizen":     "சரிபார்க்கப்பட்ட குடிமகன்",
	"servicesAvailable":   "கிடைக்கும் சேவைகள்",
	"activeComplaints":    "செயலில் உள்ள புகார்கள்",
	"communityGroups":     "சமூகக் குழுக்கள்",
	"leaderboardRank":     "லீடர்போர்டு தரம்",
	"recentActivities":    "சமீபத்திய செயல்பாடுகள்",
	"quickActions":        "விரைவு செயல்கள்",
	"browseServices":      "சேவைகளைப் பார்க்க",
	"lodgeComplaint":      "புகார் பதிவு செய்க",
	"updateProfile":       "சுயவிவரத்தை புதுப்பிக்க",
	"yourAchievements":    "உங்கள் சாதனைகள்",
	"topContributor":      "முதன்மை பங்களிப்பாளர்",
	"complaintsSubmitted": "புகார்கள் சமர்ப்பிக்கப்பட்டன",
	"thisMonth":           "இந்த மாதம்",
	"resolutionRate":      "தீர்வு விகிதம்",
	"resolvedIssues":      "தீர்க்கப்பட்ட பிரச்சினைகள்",

	// Voice Input
	"voiceInput":     "குரல் உள்ளீடு",
	"textInput":      "உரை உள்ளீடு",
	"voiceComplaint": "குரல் புகார்",
	"shareToApps":    "ஆப்ஸில் பகிரவும்",
	"reportIssue":    "சிக்கலைப் புகாரளிக்கவும்",
	"foundProblem":   "உங்கள் பகுதியில் ஏதேனும் பிரச்சினை உள்ளதா? அதைப் புகாரளித்து உங்கள் நகரத்தை சிறப்பாக்க உதவுங்கள்.",

	// Language
	"language":       "மொழி",
	"selectLanguage": "மொழியைத் தேர்ந்தெடுக்கவும்",
	"changeLanguage": "மொழியை மாற்றவும்",

	// Common
	"loading":     "ஏற்றுகிறது...",
	"save":        "சேமிக்கவும்",
	"cancel":      "ரத்து செய்க",
	"submit":      "சமர்ப்பிக்கவும்",
	"close":       "மூடு",
	"edit":        "திருத்து",
	"delete":      "நீக்கு",
	"view":        "பார்க்க",
	"share":       "பகிர்",
	"vote":        "வாக்களிக்க",
	"status":      "நிலை",
	"priority":    "முன்னுரிமை",
	"category":    "வகை",
	"location":    "இடம்",
	"date":        "தேதி",
	"description": "விளக்கம்",
	"high":        "உயர்",
	"medium":      "நடுத்தர",
	"low":         "குறைந்த",
	"pending":     "நிலுவையில்",
	"inProgress":  "முன்னேற்றத்தில்",
	"resolved":    "தீர்க்கப்பட்டது",
	"completed":   "முடிக்கப்பட்டது",
}
