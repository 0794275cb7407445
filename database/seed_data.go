package database

import "github.com/yeremiapane/neo-dine/models"

func strPtr(s string) *string { return &s }

var seedCategories = []models.MenuCategory{
	{ID: models.CategoryBreakfast, Name: "Sunrise Protocol", Gradient: "from-orange-400 to-yellow-300", Position: 1},
	{ID: models.CategoryStarter, Name: "Cyber Starters", Gradient: "from-neon-blue to-blue-900", Position: 2},
	{ID: models.CategoryMain, Name: "Mainframe Mains", Gradient: "from-purple-600 to-neon-pink", Position: 3},
	{ID: models.CategoryDessert, Name: "Digital Desserts", Gradient: "from-emerald-500 to-neon-green", Position: 4},
	{ID: models.CategoryDrinks, Name: "Neon Elixirs", Gradient: "from-red-600 to-orange-600", Position: 5},
}

var seedDishes = []models.Dish{
	{
		ID:          20,
		Name:        "Anti-Gravity Pancakes",
		Description: "Fluffy stacks suspended in mid-air, served with levitating maple spheres and nano-butter.",
		Price:       14.00,
		Image:       "https://images.unsplash.com/photo-1598214886806-c87b84b7078b?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.8,
		Calories:    550,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2016/11/29/6566-193666085_large.mp4"),
	},
	{
		ID:          21,
		Name:        "Binary Benedict",
		Description: "Poached cyber-eggs on holographic toast with molecular hollandaise sauce.",
		Price:       16.50,
		Image:       "https://images.unsplash.com/photo-1608039829572-78524f79c4c7?w=500&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.9,
		Calories:    420,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2021/05/23/75043-554407981_large.mp4"),
	},
	{
		ID:          22,
		Name:        "Neon Smoothie Bowl",
		Description: "Bioluminescent açai blend topped with crystallized dragon fruit and star dust.",
		Price:       13.00,
		Image:       "https://images.unsplash.com/photo-1590301157890-4810ed352733?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.7,
		Calories:    380,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/25/40133-424930030_large.mp4"),
	},
	{
		ID:          23,
		Name:        "Quantum Coffee & Croissant",
		Description: "Gold-dusted pastry paired with coffee brewed in a temporal vacuum.",
		Price:       9.50,
		Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.9,
		Calories:    300,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/11/38437-419747209_large.mp4"),
	},
	{
		ID:          24,
		Name:        "Nebula Waffles",
		Description: "Crispy Belgian waffles infused with starlight berries and electric syrup.",
		Price:       12.50,
		Image:       "https://images.unsplash.com/photo-1562376552-0d160a2f238d?w=500&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.8,
		Calories:    480,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2017/01/04/7016-198165089_large.mp4"),
	},
	{
		ID:          25,
		Name:        "Sonic Avocado Toast",
		Description: "Sourdough toasted with sound waves, topped with perfectly sliced cyber-avocados.",
		Price:       15.00,
		Image:       "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=500&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.9,
		Calories:    320,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2021/09/06/87600-600329976_large.mp4"),
	},
	{
		ID:          30,
		Name:        "Nebula Espresso",
		Description: "Hot concentrated dark matter coffee brewed under high-pressure stasis.",
		Price:       6.00,
		Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.9,
		Calories:    5,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/11/38437-419747209_large.mp4"),
	},
	{
		ID:          70,
		Name:        "Cosmic Cappuccino",
		Description: "Rich espresso topped with a milky way of micro-foam and stardust sprinkles.",
		Price:       6.50,
		Image:       "https://images.unsplash.com/photo-1534778101976-62847782c213?w=500&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.8,
		Calories:    120,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/11/38437-419747209_large.mp4"),
	},
	{
		ID:          71,
		Name:        "Stardust Macchiato",
		Description: "Layered espresso and steamed gravity-milk with a caramel comet trail.",
		Price:       6.80,
		Image:       "https://images.unsplash.com/photo-1541167760496-1628856ab772?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.9,
		Calories:    150,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/11/38437-419747209_large.mp4"),
	},
	{
		ID:          50,
		Name:        "Molten Mars Mocha",
		Description: "Hot rich cocoa fused with espresso and topped with red dust foam.",
		Price:       6.50,
		Image:       "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.9,
		Calories:    220,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/11/38437-419747209_large.mp4"),
	},
	{
		ID:          51,
		Name:        "Solar Golden Milk",
		Description: "Hot turmeric and ginger latte steaming with healing nano-particles.",
		Price:       5.80,
		Image:       "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?w=500&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.8,
		Calories:    180,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2016/11/29/6559-193663674_large.mp4"),
	},
	{
		ID:          52,
		Name:        "Steam-Punk Cider",
		Description: "Hot spiced apple elixir with cinnamon vapor and star anise.",
		Price:       5.50,
		Image:       "https://images.unsplash.com/photo-1542990253-0d0f5be5f0ed?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.7,
		Calories:    140,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/03/18/33823-398704648_large.mp4"),
	},
	{
		ID:          32,
		Name:        "Lunar Herbal Infusion",
		Description: "Hot steaming blend of moon-grown mint and soothing chamomile herbs.",
		Price:       5.00,
		Image:       "https://images.unsplash.com/photo-1597318181409-cf64d0b5d8a2?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.7,
		Calories:    0,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/03/18/33823-398704648_large.mp4"),
	},
	{
		ID:          31,
		Name:        "Plasma Earl Grey",
		Description: "Hot bergamot-infused black tea with suspended glowing plasma particles.",
		Price:       5.50,
		Image:       "https://images.unsplash.com/photo-1597481499750-3e6b22637e12?w=500&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.8,
		Calories:    0,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2016/11/29/6559-193663674_large.mp4"),
	},
	{
		ID:          72,
		Name:        "Aurora Matcha Latte",
		Description: "Ceremonial grade matcha whisked with ionized milk and glowing green energy.",
		Price:       7.00,
		Image:       "https://images.unsplash.com/photo-1515823064-d6e0c04616a7?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryBreakfast,
		Rating:      4.9,
		Calories:    180,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2021/04/09/70548-535340685_large.mp4"),
	},
	{
		ID:          5,
		Name:        "Binary Brownie",
		Description: "Dark matter chocolate with a core of molten gold caramel.",
		Price:       12.99,
		Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.9,
		Calories:    450,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/09/16/49964-459864275_large.mp4"),
	},
	{
		ID:          9,
		Name:        "Holo-Cheesecake",
		Description: "Deconstructed cheesecake with holographic sugar shards and berry mist.",
		Price:       16.00,
		Image:       "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.7,
		Calories:    410,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/01/37525-415510656_large.mp4"),
	},
	{
		ID:          11,
		Name:        "Nebula Lava Cake",
		Description: "Molten dark chocolate core simulating a black hole event horizon.",
		Price:       14.50,
		Image:       "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.9,
		Calories:    520,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/03/17/33816-398704257_large.mp4"),
	},
	{
		ID:          40,
		Name:        "Neon Lime Tart",
		Description: "Tangy lime curd in a charcoal shell with glowing meringue peaks.",
		Price:       13.50,
		Image:       "https://images.unsplash.com/photo-1519915028121-7d3463d20b13?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.8,
		Calories:    380,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/04/37905-417436294_large.mp4"),
	},
	{
		ID:          41,
		Name:        "Plasma Parfait",
		Description: "Layers of suspended fruit gels and zero-g cream in a gravity glass.",
		Price:       11.50,
		Image:       "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.6,
		Calories:    320,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2016/10/29/6146-189600174_large.mp4"),
	},
	{
		ID:          42,
		Name:        "Quantum Cookie Skillet",
		Description: "Warm cookie dough with shifting chocolate chunks and vanilla bean ice cream.",
		Price:       14.00,
		Image:       "https://images.unsplash.com/photo-1590080875515-8a3a8dc5735e?w=500&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.9,
		Calories:    550,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/09/16/49964-459864275_large.mp4"),
	},
	{
		ID:          43,
		Name:        "Android Apple Pie",
		Description: "Deconstructed spiced apples with metallic sugar glass and cinnamon dust.",
		Price:       12.00,
		Image:       "https://images.unsplash.com/photo-1568571780765-9276ac8b75a2?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.7,
		Calories:    390,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/10/22/53323-472655787_large.mp4"),
	},
	{
		ID:          44,
		Name:        "Galactic Gelato",
		Description: "Swirled ice cream resembling nebula clouds with popping candy stars.",
		Price:       10.50,
		Image:       "https://images.unsplash.com/photo-1557142046-c704a3adf364?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.8,
		Calories:    280,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/06/19/42456-431326495_large.mp4"),
	},
	{
		ID:          45,
		Name:        "Void Velvet Cake",
		Description: "Deep purple velvet cake with bioluminescent frosting and blackberry core.",
		Price:       15.00,
		Image:       "https://images.unsplash.com/photo-1616541823729-00fe0aacd32c?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDessert,
		Rating:      4.9,
		Calories:    450,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/01/37525-415510656_large.mp4"),
	},
	{
		ID:          33,
		Name:        "Neutron Avocado Deluxe",
		Description: "Rich avocado blended with Sweet Mango, cyber-dates, almonds, and walnuts, topped with meteorite dried fruits.",
		Price:       9.00,
		Image:       "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDrinks,
		Rating:      4.9,
		Calories:    450,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2021/08/04/83863-583279165_large.mp4"),
	},
	{
		ID:          34,
		Name:        "Gamma Avocado Shake",
		Description: "Cold silky avocado blended with nutrient-dense cyber-honey and almond milk.",
		Price:       8.50,
		Image:       "https://images.unsplash.com/photo-1556881286-fc6915169721?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDrinks,
		Rating:      4.9,
		Calories:    250,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/04/37905-417436294_large.mp4"),
	},
	{
		ID:          35,
		Name:        "Kiwi Flux Nectar",
		Description: "Cold radiant green kiwi juice charged with essential electrolytes.",
		Price:       8.00,
		Image:       "https://images.unsplash.com/photo-1610970881699-44a5587cabec?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDrinks,
		Rating:      4.7,
		Calories:    140,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/07/04/43870-435760444_large.mp4"),
	},
	{
		ID:          6,
		Name:        "Void Cocktail",
		Description: "Color-shifting gin blend that glows under UV light.",
		Price:       15.00,
		Image:       "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDrinks,
		Rating:      4.8,
		Calories:    150,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/07/25/45688-444453531_large.mp4"),
	},
	{
		ID:          10,
		Name:        "Neural Nectar",
		Description: "Energizing matcha blend with synaptic-enhancing pearls.",
		Price:       12.50,
		Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDrinks,
		Rating:      4.6,
		Calories:    120,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2021/04/09/70548-535340685_large.mp4"),
	},
	{
		ID:          12,
		Name:        "Quantum Quencher",
		Description: "Sparkling blue algae infusion that changes flavor frequency as you sip.",
		Price:       11.00,
		Image:       "https://images.unsplash.com/photo-1546171753-97d7676e4602?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryDrinks,
		Rating:      4.7,
		Calories:    90,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/05/22/39735-424040182_large.mp4"),
	},
	{
		ID:          1,
		Name:        "Quantum Burger",
		Description: "Lab-grown wagyu infused with truffle particles, levitating on a magnetic plate.",
		Price:       24.99,
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryMain,
		Rating:      4.9,
		Calories:    850,
	},
	{
		ID:          2,
		Name:        "Neon Ramen",
		Description: "Bioluminescent broth with holographic noodles and nano-spiced pork.",
		Price:       18.50,
		Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryMain,
		Rating:      4.8,
		Calories:    620,
		IsSpicy:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2019/05/29/24056-340868158_large.mp4"),
	},
	{
		ID:          3,
		Name:        "Cyber Sushi Set",
		Description: "Precision-cut sashmi with edamame puree and liquid nitrogen fog.",
		Price:       32.00,
		Image:       "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryStarter,
		Rating:      5.0,
		Calories:    400,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/01/05/30919-383789392_large.mp4"),
	},
	{
		ID:          7,
		Name:        "Zero-G Scallops",
		Description: "Pan-seared scallops served on a levitating bed of seafoam and coral dust.",
		Price:       28.00,
		Image:       "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryStarter,
		Rating:      4.9,
		Calories:    320,
	},
	{
		ID:          4,
		Name:        "Plasma Pizza",
		Description: "Zero-gravity dough topped with radiant tomatoes and electric basil.",
		Price:       22.00,
		Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryMain,
		Rating:      4.7,
		Calories:    900,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2021/05/26/75421-555776092_large.mp4"),
	},
	{
		ID:          8,
		Name:        "Chrono Steak",
		Description: "Aged in a temporal stasis field for perfect tenderness, served with void sauce.",
		Price:       45.00,
		Image:       "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryMain,
		Rating:      5.0,
		Calories:    950,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2017/04/20/8807-214300431_large.mp4"),
	},
	{
		ID:          60,
		Name:        "Magnetic Mushroom Risotto",
		Description: "Creamy arborio rice infused with magnetic truffles and levitating parmesan crisps.",
		Price:       26.00,
		Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryStarter,
		Rating:      4.8,
		Calories:    540,
		IsVegan:     true,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2021/04/18/71408-538876403_large.mp4"),
	},
	{
		ID:          61,
		Name:        "Solar-Flare Lamb Chops",
		Description: "Grilled over a mini-sun reactor, served with mint-plasma jelly.",
		Price:       38.00,
		Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryMain,
		Rating:      4.9,
		Calories:    720,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2016/11/18/6438-192131238_large.mp4"),
	},
	{
		ID:          62,
		Name:        "Chrono-Crusted Cod",
		Description: "Line-caught cod with a time-dilated herb crust and lemon nebula foam.",
		Price:       29.50,
		Image:       "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=800&auto=format&fit=crop&q=80",
		CategoryID:  models.CategoryMain,
		Rating:      4.7,
		Calories:    460,
		VideoURL:    strPtr("https://cdn.pixabay.com/video/2020/03/01/33100-394432167_large.mp4"),
	},
}

var seedChefs = []models.Chef{
	{
		ID:           101,
		Name:         "Chef A.I.da",
		Specialty:    "Molecular Gastronomy",
		Image:        "https://images.unsplash.com/photo-1583394293214-28ded15ee548?w=800&auto=format&fit=crop&q=80",
		Availability: "Tonight",
		Rating:       5.0,
		Bio:          "An industry icon in modern molecular gastronomy, formerly the executive chef at The Alchemist. Known for merging chemistry with high-art plating.",
		Education:    "The Culinary Institute of America (CIA) - 2018",
		Experience: []string{
			"2018-2020: Sous Chef at Alinea, Chicago",
			"2021-2023: Executive Chef at The Void, London",
			"2024-Present: Head Culinary Director at NEO DINE",
		},
		Philosophy: "Dining is not just eating; it is an experiment in emotion and science.",
		Stats:      models.ChefStats{Creativity: 98, Precision: 100, Speed: 95, Tech: 99},
	},
	{
		ID:           102,
		Name:         "Marcus Void",
		Specialty:    "Nordic-Japanese Fusion",
		Image:        "https://images.unsplash.com/photo-1577219491135-ce391730fb2c?w=800&auto=format&fit=crop&q=80",
		Availability: "Tomorrow",
		Rating:       4.9,
		Bio:          "A renowned expert in sustainable foraging and precision knife skills. He combines the minimalism of Japan with the earthy flavors of the Nordic region.",
		Education:    "Le Cordon Bleu, Paris - 2019",
		Experience: []string{
			"2019-2021: Chef de Partie at Frantzén, Stockholm",
			"2022-2024: Head Chef at Kaze, Tokyo",
			"2025: Awarded 'Best New Chef' by Global Gastronomy",
		},
		Philosophy: "Nature provides the ingredients; I simply curate the silence between flavors.",
		Stats:      models.ChefStats{Creativity: 95, Precision: 98, Speed: 92, Tech: 85},
	},
	{
		ID:           103,
		Name:         "Elena Cyber",
		Specialty:    "Avant-Garde Pastry",
		Image:        "https://images.unsplash.com/photo-1566554273541-37a9ca77b91f?w=800&auto=format&fit=crop&q=80",
		Availability: "Tonight",
		Rating:       4.9,
		Bio:          "An architect turned pastry chef who designs desserts with structural integrity and zero-gravity aesthetics. Famous for her 'floating' sugar work.",
		Education:    "École Ducasse, France - 2020",
		Experience: []string{
			"2020-2022: Lead Pastry Chef at Pierre Hermé Paris",
			"2023: Winner of the World Chocolate Masters",
			"2025-Present: Director of Sweet Innovation at NEO DINE",
		},
		Philosophy: "Sugar is the only medium that can be both liquid glass and edible air.",
		Stats:      models.ChefStats{Creativity: 100, Precision: 95, Speed: 88, Tech: 96},
	},
	{
		ID:           104,
		Name:         "Hiroshi Quantum",
		Specialty:    "Modern Kaiseki",
		Image:        "https://images.unsplash.com/photo-1581299894007-aaa50297cf16?w=800&auto=format&fit=crop&q=80",
		Availability: "Tomorrow",
		Rating:       5.0,
		Bio:          "A third-generation sushi master who integrates modern dry-aging technology with centuries-old tradition to create unmatched textures.",
		Education:    "Tsuji Culinary Institute, Osaka - 2015",
		Experience: []string{
			"2015-2020: Apprentice at Sukiyabashi Jiro",
			"2021-2023: Executive Chef at Narisawa",
			"2024: Featured in 'Chef's Table: Future Edition'",
		},
		Philosophy: "Respect the ingredient, master the time, and the flavor will follow.",
		Stats:      models.ChefStats{Creativity: 92, Precision: 100, Speed: 96, Tech: 90},
	},
}
