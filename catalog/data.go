package catalog

var welcome = Welcome{
	Title:    "Travel Genius",
	Tagline:  "Your AI-powered travel companion",
	Greeting: "Welcome to Beijing!",
	Readouts: []Readout{
		{Icon: "🌤️", Value: "25°C | 77°F", Caption: "Sunny"},
		{Icon: "🕒", Value: "2:30 PM", Caption: "Local Time"},
		{Icon: "💱", Value: "1 USD = 6.45 CNY", Caption: "Exchange Rate"},
	},
	Recommendation: Recommendation{
		Title: "Today's Recommendation",
		Text:  "Explore the Forbidden City and immerse yourself in China's imperial history.",
	},
	Features: []Feature{
		{Icon: "🗣️", Title: "Translate", Description: "Break language barriers"},
		{Icon: "🧭", Title: "Discover", Description: "Explore top attractions"},
		{Icon: "🍜", Title: "Taste", Description: "Experience local cuisine"},
		{Icon: "💡", Title: "Tips", Description: "Get insider advice"},
	},
}

var attractions = []AttractionCategory{
	{
		Name: "Historical Palaces",
		Places: []Place{
			{
				Name:        "Forbidden City",
				Description: "Imperial palace from the Ming to Qing dynasties.",
				Tip:         "Vast complex, plan for a full day. Audio guides recommended.",
			},
			{
				Name:        "Summer Palace",
				Description: "Lakeside resort of emperors, known for its gardens.",
				Tip:         "Less crowded in mornings. Don't miss the marble boat.",
			},
		},
	},
	{
		Name: "Great Wall Sections",
		Places: []Place{
			{
				Name:        "Mutianyu",
				Description: "Well-preserved section with toboggan ride.",
				Tip:         "Less crowded than Badaling. Great for photos.",
			},
			{
				Name:        "Jinshanling",
				Description: "Partially restored section for serious hikers.",
				Tip:         "Challenging hike, but worth it for the views and fewer tourists.",
			},
		},
	},
}

var cuisines = []CuisineEntry{
	{
		Type:        "Peking Duck",
		Description: "Beijing's most famous dish, crispy skinned duck served with pancakes.",
		Restaurants: []Restaurant{
			{Name: "Dadong Roast Duck Restaurant", Rating: 4.5},
			{Name: "Siji Minfu Restaurant", Rating: 4.3},
		},
	},
	{
		Type:        "Dumplings",
		Description: "Various filled dumplings, a staple of Northern Chinese cuisine.",
		Restaurants: []Restaurant{
			{Name: "Din Tai Fung", Rating: 4.6},
			{Name: "Baoyuan Dumplings", Rating: 4.2},
		},
	},
}

var tips = []TravelTip{
	{
		Category: "Cultural Etiquette",
		Text:     "When receiving a business card, accept it with both hands and take a moment to read it.",
	},
	{
		Category: "Transportation",
		Text:     "The Beijing Subway is extensive and efficient. Consider buying a rechargeable IC card for convenient travel.",
	},
	{
		Category: "Shopping",
		Text:     "Bargaining is expected in markets. Start at about 50% of the asking price and negotiate from there.",
	},
	{
		Category: "Dining",
		Text:     "Tipping is not customary in most restaurants in Beijing. Service charge is often included in high-end establishments.",
	},
}

var languages = []Language{
	{Code: "zh", Name: "Chinese (Simplified)"},
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
}
