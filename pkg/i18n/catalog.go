package i18n

var catalog = map[Language]map[string]string{
	English: {
		"app.subtitle":       "Vital Signs. Any Voice.",
		"app.tagline":        "When Every Second Counts, Language Shouldn't Be a Barrier",
		"app.warning":        "This is a screening tool, not a diagnosis. In emergency, call 108.",
		"app.start":          "Start Screening",
		"app.dashboard":      "Admin Dashboard",
		"feature.fast":       "FAST Protocol",
		"feature.voice":      "Voice Input",
		"feature.time":       "Under 2 Min",
		"screen.title":       "FAST Protocol Screening",
		"screen.yes":         "Yes",
		"screen.no":          "No",
		"screen.cancel":      "Cancel",
		"screen.speak":       "Tap to Speak",
		"screen.listening":   "Listening...",
		"screen.prompt":      "Answer yes or no (q to cancel)",
		"screen.cancelled":   "Screening cancelled. Nothing was saved.",
		"q.face":             "Is one side of the face drooping or numb?",
		"q.arm":              "Is there weakness or numbness in one arm?",
		"q.speech":           "Is speech slurred or difficult to understand?",
		"q.time":             "Did symptoms start within the last 3 hours?",
		"label.face":         "Face Drooping",
		"label.arm":          "Arm Weakness",
		"label.speech":       "Speech Difficulty",
		"label.time":         "Recent (<3hrs)",
		"result.title":       "Screening Results",
		"result.responses":   "Your Responses:",
		"result.duration":    "Duration",
		"result.symptoms":    "Symptoms",
		"result.download":    "Download PDF",
		"result.share":       "Share Results",
		"result.new":         "New Screening",
		"result.disclaimer":  "This is a screening tool. Consult a doctor for medical advice.",
		"result.find":        "Find Nearest Hospital",
		"result.call108":     "Call 108 Emergency",
		"risk.HIGH.title":    "🔴 HIGH CONCERN - Urgent Action Needed",
		"risk.HIGH.desc":     "Multiple stroke symptoms detected. Seek immediate medical attention.",
		"risk.HIGH.action":   "Call 108 or go to nearest hospital NOW",
		"risk.MEDIUM.title":  "🟡 MODERATE CONCERN - Consult Doctor",
		"risk.MEDIUM.desc":   "Some symptoms detected. Medical consultation recommended within 24 hours.",
		"risk.MEDIUM.action": "Schedule doctor appointment soon",
		"risk.LOW.title":     "🟢 LOW CONCERN - Monitor Symptoms",
		"risk.LOW.desc":      "No significant stroke symptoms detected at this time.",
		"risk.LOW.action":    "Continue monitoring and seek help if symptoms develop",
		"dash.title":         "Admin Dashboard",
		"dash.total":         "Total Screenings",
		"dash.avg":           "Avg Duration",
		"dash.high":          "High Risk",
		"dash.medium":        "Medium Risk",
		"dash.low":           "Low Risk",
		"dash.recent":        "Recent Screenings",
		"dash.clear":         "Clear History",
		"dash.clear.confirm": "Clear all screening history?",
		"dash.clear.done":    "Screening history cleared.",
		"dash.clear.aborted": "Nothing was deleted.",
		"dash.home":          "Back Home",
		"map.title":          "Nearby Hospitals",
		"map.loading":        "Finding hospitals near you...",
		"map.within":         "Showing hospitals within 10km",
		"map.emergency":      "24/7 Emergency",
		"map.directions":     "Get Directions",
		"map.call":           "Call",
		"map.critical":       "Critical Emergency?",
		"map.call108":        "Call 108 immediately",
		"map.back":           "Back",
	},
	Hindi: {
		"app.subtitle":       "जीवन संकेत। हर आवाज़।",
		"app.tagline":        "जब हर पल गिना जाता है, भाषा बाधा नहीं होनी चाहिए",
		"app.warning":        "यह एक स्क्रीनिंग टूल है, निदान नहीं। आपात स्थिति में 108 पर कॉल करें।",
		"app.start":          "जांच शुरू करें",
		"app.dashboard":      "एडमिन डैशबोर्ड",
		"feature.fast":       "FAST प्रोटोकॉल",
		"feature.voice":      "आवाज इनपुट",
		"feature.time":       "2 मिनट से कम",
		"screen.title":       "FAST प्रोटोकॉल जांच",
		"screen.yes":         "हाँ",
		"screen.no":          "नहीं",
		"screen.cancel":      "रद्द करें",
		"screen.speak":       "बोलने के लिए टैप करें",
		"screen.listening":   "सुन रहा हूं...",
		"screen.prompt":      "हाँ या नहीं में उत्तर दें (रद्द करने के लिए q)",
		"screen.cancelled":   "जांच रद्द की गई। कुछ भी सहेजा नहीं गया।",
		"q.face":             "क्या चेहरे का एक हिस्सा झुका हुआ है या सुन्न है?",
		"q.arm":              "क्या एक हाथ में कमजोरी या सुन्नपन है?",
		"q.speech":           "क्या बोलने में दिक्कत है या बोली अस्पष्ट है?",
		"q.time":             "क्या लक्षण पिछले 3 घंटे के अंदर शुरू हुए?",
		"label.face":         "चेहरा झुका",
		"label.arm":          "हाथ कमजोर",
		"label.speech":       "बोलने में दिक्कत",
		"label.time":         "हाल का (<3 घंटे)",
		"result.title":       "जांच परिणाम",
		"result.responses":   "आपके उत्तर:",
		"result.download":    "PDF डाउनलोड करें",
		"result.share":       "परिणाम साझा करें",
		"result.new":         "नई जांच",
		"result.disclaimer":  "यह एक स्क्रीनिंग टूल है। चिकित्सा सलाह के लिए डॉक्टर से परामर्श करें।",
		"result.find":        "निकटतम अस्पताल खोजें",
		"result.call108":     "108 आपातकाल कॉल करें",
		"risk.HIGH.title":    "🔴 उच्च चिंता - तत्काल कार्रवाई आवश्यक",
		"risk.HIGH.desc":     "कई स्ट्रोक लक्षण पाए गए। तुरंत चिकित्सा सहायता लें।",
		"risk.HIGH.action":   "अभी 108 पर कॉल करें या निकटतम अस्पताल जाएं",
		"risk.MEDIUM.title":  "🟡 मध्यम चिंता - डॉक्टर से परामर्श करें",
		"risk.MEDIUM.desc":   "कुछ लक्षण पाए गए। 24 घंटे के भीतर डॉक्टर से सलाह लें।",
		"risk.MEDIUM.action": "जल्द ही डॉक्टर की नियुक्ति करें",
		"risk.LOW.title":     "🟢 कम चिंता - लक्षणों की निगरानी करें",
		"risk.LOW.desc":      "इस समय कोई महत्वपूर्ण स्ट्रोक लक्षण नहीं मिले।",
		"risk.LOW.action":    "निगरानी जारी रखें और लक्षण विकसित होने पर सहायता लें",
		"map.title":          "निकटतम अस्पताल",
		"map.loading":        "आपके पास अस्पताल खोज रहे हैं...",
		"map.within":         "10 किमी के भीतर अस्पताल दिखा रहे हैं",
		"map.emergency":      "24/7 आपातकाल",
		"map.directions":     "दिशा-निर्देश पाएं",
		"map.call":           "कॉल करें",
		"map.critical":       "गंभीर आपातकाल?",
		"map.call108":        "तुरंत 108 पर कॉल करें",
		"map.back":           "वापस",
	},
}
