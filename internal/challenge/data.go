package challenge

// Transport factors: car 0.404 kg CO₂/mile, bus/rail 0.089 kg/mile.
// Grid electricity: 0.42 kg CO₂/kWh.
var defaultChallenges = []Challenge{
	// Food
	{
		ID: 1, Title: "Meatless Monday", Category: CategoryFood, Difficulty: DifficultyEasy, Icon: "🥬",
		Description: "Skip all meat for the entire day. Red meat has the highest carbon footprint among foods.",
		CO2Impact:   4.05, // 0.15 kg meat * 27 kg/kg
		Unit:        UnitKgCO2,
		Tips:        []string{"Try lentil curry", "Bean tacos are delicious", "Mushrooms make great meat substitutes"},
	},
	{
		ID: 2, Title: "Local Produce Day", Category: CategoryFood, Difficulty: DifficultyMedium, Icon: "🌽",
		Description: "Buy only locally-sourced groceries. Transportation accounts for 11% of food emissions.",
		CO2Impact:   2.2, // 2.5 kg transport share * 0.89
		Unit:        UnitKgCO2,
		Tips:        []string{"Visit farmers markets", "Check product origins at store", "Seasonal produce is often local"},
	},
	{
		ID: 3, Title: "Plant-Based Breakfast", Category: CategoryFood, Difficulty: DifficultyEasy, Icon: "🥣",
		Description: "Replace eggs and bacon with oatmeal, fruits, or plant-based alternatives.",
		CO2Impact:   0.99, // 0.1*4.8 eggs + 0.05*12 bacon - 0.1*0.9 oats
		Unit:        UnitKgCO2,
		Tips:        []string{"Overnight oats are easy", "Add nuts for protein", "Smoothie bowls are filling"},
	},
	{
		ID: 4, Title: "Zero Food Waste", Category: CategoryFood, Difficulty: DifficultyMedium, Icon: "♻️",
		Description: "Don't throw away any edible food today. Food waste contributes 6% of global emissions.",
		CO2Impact:   0.75, // 0.3 kg waste * 2.5 methane-adjusted
		Unit:        UnitKgCO2,
		Tips:        []string{"Plan meals in advance", "Use leftovers creatively", "Compost scraps"},
	},
	{
		ID: 5, Title: "Dairy-Free Day", Category: CategoryFood, Difficulty: DifficultyMedium, Icon: "🥛",
		Description: "Switch to plant-based milk and skip all dairy products.",
		CO2Impact:   2.23, // 0.5 l milk * 3.2 + 0.03 kg cheese * 21
		Unit:        UnitKgCO2,
		Tips:        []string{"Oat milk froths well", "Coconut yogurt is creamy", "Nutritional yeast replaces cheese"},
	},
	{
		ID: 6, Title: "Home-Cooked Meals Only", Category: CategoryFood, Difficulty: DifficultyEasy, Icon: "👨‍🍳",
		Description: "No takeout or restaurant food. Cooking at home reduces packaging and transport emissions.",
		CO2Impact:   2.4, // 0.8 kg overhead * 3 meals
		Unit:        UnitKgCO2,
		Tips:        []string{"Meal prep on weekends", "Try one-pot recipes", "Batch cooking saves time"},
	},
	{
		ID: 7, Title: "Seafood Swap", Category: CategoryFood, Difficulty: DifficultyMedium, Icon: "🐟",
		Description: "Replace fish with plant-based alternatives or sustainable seafood choices.",
		CO2Impact:   0.47, // 0.15 kg * (5.1 fish - 2.0 plant)
		Unit:        UnitKgCO2,
		Tips:        []string{"Try hearts of palm 'crab'", "Chickpea 'tuna' is tasty", "Algae-based omega-3s exist"},
	},
	{
		ID: 8, Title: "No Processed Foods", Category: CategoryFood, Difficulty: DifficultyHard, Icon: "🥕",
		Description: "Eat only whole foods today. Processing adds significant energy and emissions.",
		CO2Impact:   1.25, // 0.5 * 2.5
		Unit:        UnitKgCO2,
		Tips:        []string{"Prep veggies in advance", "Nuts are great snacks", "Fruits satisfy sweet cravings"},
	},
	{
		ID: 9, Title: "Coffee Carbon Cut", Category: CategoryFood, Difficulty: DifficultyHard, Icon: "☕",
		Description: "Skip coffee or switch to shade-grown, carbon-neutral brands.",
		CO2Impact:   0.63, // 3 cups * 0.3 kg * 0.7
		Unit:        UnitKgCO2,
		Tips:        []string{"Herbal tea is refreshing", "Cold brew uses less energy", "Support sustainable brands"},
	},
	{
		ID: 10, Title: "Veggie Dinner Party", Category: CategoryFood, Difficulty: DifficultyMedium, Icon: "🍽️",
		Description: "Host or attend a dinner where all dishes are vegetarian.",
		CO2Impact:   10.0, // 4 guests * 2.5
		Unit:        UnitKgCO2,
		Tips:        []string{"Theme nights are fun", "Potluck reduces effort", "Indian cuisine is naturally veggie-rich"},
	},
	{
		ID: 11, Title: "No Beef Today", Category: CategoryFood, Difficulty: DifficultyEasy, Icon: "🐄",
		Description: "Beef has 20x the carbon footprint of beans. Skip it for just one day.",
		CO2Impact:   5.4, // 0.2 kg * 27
		Unit:        UnitKgCO2,
		Tips:        []string{"Try portobello burgers", "Seitan has meaty texture", "Black bean tacos rock"},
	},
	{
		ID: 12, Title: "Drink Tap Water Only", Category: CategoryFood, Difficulty: DifficultyEasy, Icon: "💧",
		Description: "Skip bottled water and sugary drinks. Plastic bottles have high carbon footprints.",
		CO2Impact:   0.25, // 3 bottles * 0.082
		Unit:        UnitKgCO2,
		Tips:        []string{"Get a reusable bottle", "Add fruit for flavor", "Room temp water is absorbed faster"},
	},
	{
		ID: 13, Title: "Chocolate Detox", Category: CategoryFood, Difficulty: DifficultyMedium, Icon: "🍫",
		Description: "Skip chocolate for a day. Cocoa farming drives deforestation.",
		CO2Impact:   0.95, // 0.05 kg * 19
		Unit:        UnitKgCO2,
		Tips:        []string{"Carob is a good substitute", "Dark chocolate has lower impact", "Fruit satisfies sweet tooth"},
	},
	{
		ID: 14, Title: "Grow Your Own Herbs", Category: CategoryFood, Difficulty: DifficultyMedium, Icon: "🌿",
		Description: "Start growing herbs at home. Reduces transport and packaging emissions.",
		CO2Impact:   0.04, // 15 kg/year / 365
		Unit:        UnitKgCO2,
		Tips:        []string{"Basil grows fast", "Mint is nearly indestructible", "Windowsill gardens work"},
	},
	{
		ID: 15, Title: "Leftover Lunch", Category: CategoryFood, Difficulty: DifficultyEasy, Icon: "📦",
		Description: "Use yesterday's dinner leftovers for today's lunch.",
		CO2Impact:   1.2,
		Unit:        UnitKgCO2,
		Tips:        []string{"Rice reheats well", "Make extra dinner portions", "Soups taste better next day"},
	},

	// Transport
	{
		ID: 16, Title: "Walk to Work", Category: CategoryTransport, Difficulty: DifficultyMedium, Icon: "🚶",
		Description: "Walk instead of driving if your commute is under 2 miles.",
		CO2Impact:   2.02, // 5 miles * 0.404
		Unit:        UnitKgCO2,
		Tips:        []string{"Leave 15 min earlier", "Good podcast time", "Great for mental health"},
	},
	{
		ID: 17, Title: "Bike Commute", Category: CategoryTransport, Difficulty: DifficultyMedium, Icon: "🚲",
		Description: "Cycle to your destination instead of driving.",
		CO2Impact:   3.23, // 8 miles * 0.404
		Unit:        UnitKgCO2,
		Tips:        []string{"Plan a safe route", "E-bikes make hills easy", "Great exercise too"},
	},
	{
		ID: 18, Title: "Public Transit Day", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "🚇",
		Description: "Use buses, trains, or subways instead of your car.",
		CO2Impact:   6.3, // 20 miles * (0.404 - 0.089)
		Unit:        UnitKgCO2,
		Tips:        []string{"Check schedules in advance", "Read or work during commute", "Monthly passes save money"},
	},
	{
		ID: 19, Title: "Carpool Champion", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "🚗",
		Description: "Share your commute with at least one other person.",
		CO2Impact:   2.02, // 10 miles * 0.404 / 2 riders
		Unit:        UnitKgCO2,
		Tips:        []string{"Use carpool apps", "Split gas costs", "HOV lanes save time"},
	},
	{
		ID: 20, Title: "No-Drive Sunday", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "🅿️",
		Description: "Keep your car parked for the entire day.",
		CO2Impact:   6.06, // 15 miles * 0.404
		Unit:        UnitKgCO2,
		Tips:        []string{"Plan activities nearby", "Walk to brunch", "Online shopping if needed"},
	},
	{
		ID: 21, Title: "Eco-Driving Mode", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "⚡",
		Description: "Drive smoothly: no rapid acceleration, maintain steady speed, coast to stops.",
		CO2Impact:   0.96, // 8 kg daily driving * 12%
		Unit:        UnitKgCO2,
		Tips:        []string{"Use cruise control", "Accelerate gently", "Anticipate traffic flow"},
	},
	{
		ID: 22, Title: "Skip One Flight", Category: CategoryTransport, Difficulty: DifficultyHard, Icon: "✈️",
		Description: "For every flight you skip this year, you save massive emissions.",
		CO2Impact:   180, // 2 flight hours * 90 kg per passenger
		Unit:        UnitKgCO2,
		Tips:        []string{"Try train travel", "Video calls work", "Staycations are underrated"},
	},
	{
		ID: 23, Title: "Combine All Errands", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "🗺️",
		Description: "Plan your route to do all errands in one efficient trip.",
		CO2Impact:   3.64, // 3 trips * 3 miles * 0.404
		Unit:        UnitKgCO2,
		Tips:        []string{"Make a list first", "Map the optimal route", "Shop in clusters"},
	},
	{
		ID: 24, Title: "Work From Home", Category: CategoryTransport, Difficulty: DifficultyMedium, Icon: "🏠",
		Description: "Remote work eliminates commute emissions entirely.",
		CO2Impact:   12.12, // 30 mile round trip * 0.404
		Unit:        UnitKgCO2,
		Tips:        []string{"Set up a proper workspace", "Take walking breaks", "Video calls replace meetings"},
	},
	{
		ID: 25, Title: "Tire Pressure Check", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "🔧",
		Description: "Properly inflated tires improve fuel efficiency by 3%.",
		CO2Impact:   6.0, // 200 kg/month * 3%
		Unit:        UnitKgCO2,
		Tips:        []string{"Check monthly", "Use a digital gauge", "Check when tires are cold"},
	},
	{
		ID: 26, Title: "Electric Scooter Day", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "🛴",
		Description: "Use an e-scooter or e-bike for short trips instead of driving.",
		CO2Impact:   2.42, // 3 trips * 2 miles * 0.404
		Unit:        UnitKgCO2,
		Tips:        []string{"Wear a helmet", "Follow traffic rules", "Great for urban areas"},
	},
	{
		ID: 27, Title: "Train Over Plane", Category: CategoryTransport, Difficulty: DifficultyMedium, Icon: "🚂",
		Description: "Choose rail travel for trips under 500 miles.",
		CO2Impact:   64, // 300 miles * (0.255 air - 0.041 rail)
		Unit:        UnitKgCO2,
		Tips:        []string{"Book in advance", "Scenic routes exist", "Work during travel"},
	},
	{
		ID: 28, Title: "Virtual Meeting Day", Category: CategoryTransport, Difficulty: DifficultyEasy, Icon: "💻",
		Description: "Replace all in-person meetings with video calls.",
		CO2Impact:   8.08, // 2 meetings * 10 miles * 0.404
		Unit:        UnitKgCO2,
		Tips:        []string{"Test tech beforehand", "Use good lighting", "Mute when not speaking"},
	},
	{
		ID: 29, Title: "Slow Down Highway", Category: CategoryTransport, Difficulty: DifficultyMedium, Icon: "🐢",
		Description: "Drive at 60 mph instead of 75 mph. Fuel efficiency drops rapidly above 50 mph.",
		CO2Impact:   3.03, // 50 miles * 0.404 * 15%
		Unit:        UnitKgCO2,
		Tips:        []string{"Use cruise control", "Leave earlier", "Enjoy the journey"},
	},
	{
		ID: 30, Title: "Avoid Rush Hour", Category: CategoryTransport, Difficulty: DifficultyMedium, Icon: "🕐",
		Description: "Travel outside peak times to avoid stop-and-go traffic.",
		CO2Impact:   0.6, // 30 idle minutes * 0.02
		Unit:        UnitKgCO2,
		Tips:        []string{"Flex your schedule", "Gym during rush hour", "Early bird catches savings"},
	},

	// Energy
	{
		ID: 31, Title: "Lights Out Hour", Category: CategoryEnergy, Difficulty: DifficultyEasy, Icon: "💡",
		Description: "Turn off all unnecessary lights for one hour.",
		CO2Impact:   0.08, // 0.2 kW * 1 h * 0.42
		Unit:        UnitKgCO2,
		Tips:        []string{"Use natural light", "Candles are cozy", "Motion sensors help"},
	},
	{
		ID: 32, Title: "Cold Wash Clothes", Category: CategoryEnergy, Difficulty: DifficultyEasy, Icon: "🧺",
		Description: "Wash all laundry in cold water. Heating water uses 90% of washer energy.",
		CO2Impact:   0.6, // 1 load * 0.6
		Unit:        UnitKgCO2,
		Tips:        []string{"Modern detergents work cold", "Colors stay vibrant", "Clothes last longer"},
	},
	{
		ID: 33, Title: "Unplug Vampires", Category: CategoryEnergy, Difficulty: DifficultyEasy, Icon: "🔌",
		Description: "Unplug all devices not in use. Standby power wastes 5-10% of home energy.",
		CO2Impact:   0.5, // 0.05 kW * 24 h * 0.42
		Unit:        UnitKgCO2,
		Tips:        []string{"Use power strips", "Smart plugs help", "Unplug chargers when full"},
	},
	{
		ID: 34, Title: "Thermostat Challenge", Category: CategoryEnergy, Difficulty: DifficultyMedium, Icon: "🌡️",
		Description: "Lower heating by 2°F or raise cooling by 2°F.",
		CO2Impact:   3.0, // 2 degrees * 1.5
		Unit:        UnitKgCO2,
		Tips:        []string{"Wear layers", "Use fans with AC", "Smart thermostats learn habits"},
	},
	{
		ID: 35, Title: "Air Dry Laundry", Category: CategoryEnergy, Difficulty: DifficultyMedium, Icon: "👕",
		Description: "Skip the dryer and hang clothes to dry.",
		CO2Impact:   1.26, // 3 kWh per load * 0.42
		Unit:        UnitKgCO2,
		Tips:        []string{"Indoor racks work", "Clothes smell fresher", "Gentle on fabrics"},
	},
	{
		ID: 36, Title: "5-Minute Shower", Category: CategoryEnergy, Difficulty: DifficultyMedium, Icon: "🚿",
		Description: "Limit your shower to 5 minutes. The average shower is 8+ minutes.",
		CO2Impact:   0.6, // 3 minutes * 0.2
		Unit:        UnitKgCO2,
		Tips:        []string{"Use a timer", "Turn off while soaping", "Low-flow showerheads help"},
	},
	{
		ID: 37, Title: "LED Swap", Category: CategoryEnergy, Difficulty: DifficultyEasy, Icon: "💡",
		Description: "Replace one incandescent bulb with LED. LEDs use 75% less energy.",
		CO2Impact:   0.11, // 40 kg/year / 365
		Unit:        UnitKgCO2,
		Tips:        []string{"LEDs last 25x longer", "Many color options", "Instant on, no warm-up"},
	},
	{
		ID: 38, Title: "Full Loads Only", Category: CategoryEnergy, Difficulty: DifficultyEasy, Icon: "🍽️",
		Description: "Only run dishwasher and washing machine with full loads.",
		CO2Impact:   0.8, // 1 avoided load * 0.8
		Unit:        UnitKgCO2,
		Tips:        []string{"Wait for full load", "Same energy per load", "Water savings too"},
	},
	{
		ID: 39, Title: "Screen-Free Evening", Category: CategoryEnergy, Difficulty: DifficultyHard, Icon: "📵",
		Description: "Turn off TVs, computers, and devices after 8 PM.",
		CO2Impact:   0.25, // 0.15 kW * 4 h * 0.42
		Unit:        UnitKgCO2,
		Tips:        []string{"Read a book", "Board games are fun", "Better sleep quality"},
	},
	{
		ID: 40, Title: "Cook with Lids", Category: CategoryEnergy, Difficulty: DifficultyEasy, Icon: "🍳",
		Description: "Always use lids when cooking. Reduces energy use by 25%.",
		CO2Impact:   0.16, // 3 meals * 0.5 kWh * 25% * 0.42
		Unit:        UnitKgCO2,
		Tips:        []string{"Food cooks faster", "Less steam in kitchen", "Use right-sized burner"},
	},

	// Lifestyle
	{
		ID: 41, Title: "No New Clothes", Category: CategoryLifestyle, Difficulty: DifficultyEasy, Icon: "👗",
		Description: "Don't buy any new clothing items today. Fashion industry = 10% of global CO2.",
		CO2Impact:   10,
		Unit:        UnitKgCO2,
		Tips:        []string{"Shop secondhand", "Host clothing swaps", "Repair before replace"},
	},
	{
		ID: 42, Title: "Digital Declutter", Category: CategoryLifestyle, Difficulty: DifficultyEasy, Icon: "📧",
		Description: "Delete old emails and files. Data centers use massive energy.",
		CO2Impact:   0.03, // 1 GB * 0.03
		Unit:        UnitKgCO2,
		Tips:        []string{"Unsubscribe from spam", "Clear cloud storage", "Empty trash folders"},
	},
	{
		ID: 43, Title: "Reusable Bag Hero", Category: CategoryLifestyle, Difficulty: DifficultyEasy, Icon: "🛍️",
		Description: "Use only reusable bags for all shopping today.",
		CO2Impact:   0.17, // 5 bags * 0.033
		Unit:        UnitKgCO2,
		Tips:        []string{"Keep bags in car", "Foldable bags fit pockets", "Tote bags are stylish"},
	},
	{
		ID: 44, Title: "Plant a Tree", Category: CategoryLifestyle, Difficulty: DifficultyMedium, Icon: "🌳",
		Description: "Plant or sponsor a tree. One tree absorbs ~21kg CO2/year.",
		CO2Impact:   21,
		Unit:        "kg CO₂/year",
		Tips:        []string{"Native species best", "Many orgs plant for you", "Great gift idea"},
	},
	{
		ID: 45, Title: "Paperless Day", Category: CategoryLifestyle, Difficulty: DifficultyEasy, Icon: "📄",
		Description: "Don't print anything. Use digital notes and documents only.",
		CO2Impact:   0.05, // 10 sheets * 0.005
		Unit:        UnitKgCO2,
		Tips:        []string{"E-sign documents", "Take phone photos", "Digital notes sync everywhere"},
	},
	{
		ID: 46, Title: "Buy Nothing Day", Category: CategoryLifestyle, Difficulty: DifficultyHard, Icon: "🚫",
		Description: "Make zero purchases except essentials. Consumerism drives emissions.",
		CO2Impact:   8,
		Unit:        UnitKgCO2,
		Tips:        []string{"Focus on experiences", "Use what you have", "Window shop only"},
	},
	{
		ID: 47, Title: "Repair Something", Category: CategoryLifestyle, Difficulty: DifficultyMedium, Icon: "🔨",
		Description: "Fix an item instead of replacing it. Extend product lifespans.",
		CO2Impact:   5,
		Unit:        UnitKgCO2,
		Tips:        []string{"YouTube tutorials help", "Repair cafes exist", "Sewing kits are cheap"},
	},
	{
		ID: 48, Title: "Secondhand Find", Category: CategoryLifestyle, Difficulty: DifficultyEasy, Icon: "🔄",
		Description: "Buy something used instead of new. Reuse beats recycling.",
		CO2Impact:   15,
		Unit:        UnitKgCO2,
		Tips:        []string{"Thrift stores", "eBay and Facebook Marketplace", "Quality often better"},
	},
	{
		ID: 49, Title: "Eco-Product Switch", Category: CategoryLifestyle, Difficulty: DifficultyMedium, Icon: "🧴",
		Description: "Replace one household product with an eco-friendly alternative.",
		CO2Impact:   3,
		Unit:        UnitKgCO2,
		Tips:        []string{"Bamboo toothbrush", "Solid shampoo bars", "Refillable containers"},
	},
	{
		ID: 50, Title: "Spread the Word", Category: CategoryLifestyle, Difficulty: DifficultyEasy, Icon: "📢",
		Description: "Tell 3 friends about climate action. Social influence multiplies impact.",
		CO2Impact:   4.5, // 3 friends * 5 kg * 30% uptake
		Unit:        "kg CO₂ potential",
		Tips:        []string{"Share this app", "Lead by example", "Make it fun, not preachy"},
	},
}
