package reply

import (
	"github.com/kailas-cloud/sahayata/internal/domain/keyword"
	"github.com/kailas-cloud/sahayata/internal/domain/language"
)

// Templates is the localized text of one language.
type Templates struct {
	// Found is a fmt pattern taking the number of matches.
	Found         string
	CategoryLabel string
	TypeLabel     string
	More          string
	CallToAction  string

	NoMatch string
	// Suggestions maps a taxonomy category name to its example line.
	Suggestions map[string]string
	Footer      string

	Apology string
}

// DefaultTemplates returns the shipped en/te/hi template set.
func DefaultTemplates() map[language.Language]Templates {
	return map[language.Language]Templates{
		language.English: {
			Found:         "✅ Found %d relevant scheme(s)!",
			CategoryLabel: "📂 Category",
			TypeLabel:     "🏷️ Type",
			More:          "➕ **More schemes found:**",
			CallToAction:  "👇 **Click any scheme below for full details!**",
			NoMatch:       "❌ No schemes found for your query.\n\n💡 **Try these suggestions:**",
			Suggestions: map[string]string{
				keyword.Education:   "🎓 Education: 'student scholarship' or 'education'",
				keyword.Agriculture: "🌾 Agriculture: 'farmer loan' or 'agriculture'",
				keyword.Women:       "👩 Women: 'women scheme' or 'mahila'",
				keyword.Health:      "🏥 Health: 'health insurance' or 'medical'",
				keyword.Pension:     "💰 Pension: 'pension' or 'senior citizen'",
				keyword.Employment:  "💼 Employment: 'employment' or 'job training'",
				keyword.Housing:     "🏠 Housing: 'housing' or 'awas'",
				keyword.Financial:   "💳 Loans & Finance: 'bank loan' or 'subsidy'",
			},
			Footer:  "🔍 **Or click the category buttons above!**",
			Apology: "⚠️ An error occurred. Please try again or use the category buttons above.",
		},
		language.Telugu: {
			Found:         "✅ %d సంబంధిత పథకం(లు) దొరికాయి!",
			CategoryLabel: "📂 వర్గం",
			TypeLabel:     "🏷️ రకం",
			More:          "➕ **మరిన్ని పథకాలు:**",
			CallToAction:  "👇 **పూర్తి వివరాల కోసం క్రింద ఏదైనా పథకాన్ని క్లిక్ చేయండి!**",
			NoMatch:       "❌ మీ ప్రశ్నకు పథకాలు కనుగొనబడలేదు.\n\n💡 **ఈ సూచనలను ప్రయత్నించండి:**",
			Suggestions: map[string]string{
				keyword.Education:   "🎓 విద్య: 'విద్యార్థి స్కాలర్‌షిప్' లేదా 'విద్య'",
				keyword.Agriculture: "🌾 వ్యవసాయం: 'రైతు రుణం' లేదా 'వ్యవసాయం'",
				keyword.Women:       "👩 మహిళలు: 'మహిళ పథకం' లేదా 'మహిళ'",
				keyword.Health:      "🏥 ఆరోగ్యం: 'ఆరోగ్య బీమా' లేదా 'ఆరోగ్యం'",
				keyword.Pension:     "💰 పెన్షన్: 'పెన్షన్' లేదా 'వృద్ధులు'",
				keyword.Employment:  "💼 ఉద్యోగం: 'ఉద్యోగం' లేదా 'పని శిక్షణ'",
				keyword.Housing:     "🏠 గృహాలు: 'గృహం' లేదా 'ఇల్లు'",
				keyword.Financial:   "💳 రుణాలు & ఆర్థికం: 'బ్యాంకు రుణం' లేదా 'సబ్సిడీ'",
			},
			Footer:  "🔍 **లేదా పైన ఉన్న వర్గం బటన్లను క్లిక్ చేయండి!**",
			Apology: "⚠️ లోపం సంభవించింది. దయచేసి మళ్లీ ప్రయత్నించండి లేదా పైన ఉన్న వర్గం బటన్లను ఉపయోగించండి.",
		},
		language.Hindi: {
			Found:         "✅ %d प्रासंगिक योजना मिली!",
			CategoryLabel: "📂 श्रेणी",
			TypeLabel:     "🏷️ प्रकार",
			More:          "➕ **और योजनाएं:**",
			CallToAction:  "👇 **पूर्ण विवरण के लिए नीचे किसी भी योजना पर क्लिक करें!**",
			NoMatch:       "❌ आपकी क्वेरी के लिए कोई योजना नहीं मिली.\n\n💡 **ये सुझाव आज़माएं:**",
			Suggestions: map[string]string{
				keyword.Education:   "🎓 शिक्षा: 'छात्र छात्रवृत्ति' या 'शिक्षा'",
				keyword.Agriculture: "🌾 कृषि: 'किसान ऋण' या 'कृषि'",
				keyword.Women:       "👩 महिला: 'महिला योजना' या 'महिला'",
				keyword.Health:      "🏥 स्वास्थ्य: 'स्वास्थ्य बीमा' या 'स्वास्थ्य'",
				keyword.Pension:     "💰 पेंशन: 'पेंशन' या 'वरिष्ठ नागरिक'",
				keyword.Employment:  "💼 रोजगार: 'रोजगार' या 'नौकरी प्रशिक्षण'",
				keyword.Housing:     "🏠 आवास: 'आवास' या 'घर'",
				keyword.Financial:   "💳 ऋण और वित्त: 'बैंक ऋण' या 'सब्सिडी'",
			},
			Footer:  "🔍 **या ऊपर श्रेणी बटन पर क्लिक करें!**",
			Apology: "⚠️ एक त्रुटि हुई। कृपया पुनः प्रयास करें या ऊपर श्रेणी बटन का उपयोग करें।",
		},
	}
}
