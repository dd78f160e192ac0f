package i18n

// Hindi table. Keys absent here resolve through the English fallback.
var hi = map[string]string{
	// Header
	"appName":    "फिक्स माय सिटी",
	"appTagline": "नागरिक सशक्तिकरण मंच",

	// Navigation
	"dashboard":     "डैशबोर्ड",
	"services":      "सेवाएं",
	"complaints":    "शिकायतें",
	"community":     "समुदाय",
	"profile":       "प्रोफाइल",
	"leaderboard":   "लीडरबोर्ड",
	"notifications": "सूचनाएं",
	"info":          "जानकारी",

	// Dashboard
	"welcomeBack":         "वापसी पर स्वागत, अक्षिता",
	"verifiedCitizen":     "सत्यापित नागरिक",
	"servicesAvailable":   "उपलब्ध सेवाएं",
	"activeComplaints":    "सक्रिय शिकायतें",
	"communityGroups":     "सामुदायिक समूह",
	"leaderboardRank":     "लीडरबोर्ड रैंक",
	"recentActivities":    "हाल की गतिविधियां",
	"quickActions":        "त्वरित कार्य",
	"browseServices":      "सेवाएं देखें",
	"lodgeComplaint":      "शिकायत दर्ज करें",
	"updateProfile":       "प्रोफाइल अपडेट करें",
	"yourAchievements":    "आपकी उपलब्धियां",
	"topContributor":      "शीर्ष योगदानकर्ता",
	"complaintsSubmitted": "शिकायतें दर्ज",
	"thisMonth":           "इस महीने",
	"resolutionRate":      "समाधान दर",
	"resolvedIssues":      "हल किए गए मुद्दे",

	// Services
	"serviceDirectory":     "सेवा निर्देशिका",
	"serviceDirectoryDesc": "नागरिकों के लिए उपलब्ध सभी सरकारी सेवाओं को देखें",
	"searchServices":       "सेवाएं खोजें...",
	"filter":               "फ़िल्टर",
	"totalServices":        "कुल सेवाएं",
	"emergencyServices":    "आपातकालीन सेवाएं",
	"categories":           "श्रेणियां",
	"digitalServices":      "डिजिटल सेवाएं",
	"online":               "ऑनलाइन",
	"active":               "सक्रिय",
	"available":            "उपलब्ध",
	"seasonal":             "मौसमी",
	"apply":                "आवेदन करें",
	"onlineAvailable":      "ऑनलाइन उपलब्ध",
	"help":                 "सहायता",
	"onlinePortal":         "ऑनलाइन पोर्टल",
	"visitLocalOffice":     "स्थानीय कार्यालय जाएं",
	"police":               "पुलिस",
	"fireDepartment":       "अग्निशमन विभाग",
	"medicalEmergency":     "चिकित्सा आपातकाल",

	// Voice Input
	"voiceInput":     "आवाज़ इनपुट",
	"textInput":      "टेक्स्ट इनपुट",
	"voiceComplaint": "आवाज़ शिकायत",
	"shareToApps":    "ऐप्स में साझा करें",
	"reportIssue":    "समस्या की रिपोर्ट करें",
	"foundProblem":   "अपने क्षेत्र में कोई समस्या मिली? इसकी रिपोर्ट करके अपने शहर को बेहतर बनाने में मदद करें।",

	// Language
	"language":       "भाषा",
	"selectLanguage": "भाषा चुनें",
	"changeLanguage": "भाषा बदलें",

	// Common
	"loading":     "लोड हो रहा है...",
	"save":        "सेव करें",
	"cancel":      "रद्द करें",
	"submit":      "सबमिट करें",
	"close":       "बंद करें",
	"edit":        "संपादित करें",
	"delete":      "हटाएं",
	"view":        "देखें",
	"share":       "साझा करें",
	"vote":        "वोट दें",
	"status":      "स्थिति",
	"priority":    "प्राथमिकता",
	"category":    "श्रेणी",
	"location":    "स्थान",
	"date":        "तारीख",
	"description": "विवरण",
	"high":        "उच्च",
	"medium":      "मध्यम",
	"low":         "कम",
	"pending":     "लंबित",
	"inProgress":  "प्रगति में",
	"resolved":    "हल हो गया",
	"completed":   "पूर्ण",
}
