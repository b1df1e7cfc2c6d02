package catalog

import "github.com/shopspring/decimal"

func rupees(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Seed returns the Tangry spice catalog.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Slug:        "garam-masala",
			Name:        "Garam Masala",
			Description: "A royal blend of 13 authentic spices perfect for rich curries and special occasions. Our signature Garam Masala brings the authentic taste of India to your kitchen.",
			Category:    "Blended Spices",
			Subcategory: "Premium Blends",
			Variants: []Variant{
				{ID: "gm-50g", Name: "50g", SKU: "EVR-GM-50", Price: rupees(45), CompareAtPrice: rupees(55), Stock: 500, Weight: 50, IsAvailable: true},
				{ID: "gm-100g", Name: "100g", SKU: "EVR-GM-100", Price: rupees(85), CompareAtPrice: rupees(100), Stock: 300, Weight: 100, IsAvailable: true},
				{ID: "gm-200g", Name: "200g", SKU: "EVR-GM-200", Price: rupees(160), CompareAtPrice: rupees(190), Stock: 200, Weight: 200, IsAvailable: true},
			},
			Images: []string{"/products/garam-masala-1.jpg", "/products/garam-masala-2.jpg"},
			Features: []string{
				"Blend of 13 premium spices",
				"No artificial colors or preservatives",
				"Triple-washed and sun-dried",
				"Perfect for curries and gravies",
			},
			Ingredients:       []string{"Coriander", "Cumin", "Black Pepper", "Cardamom", "Cinnamon", "Cloves", "Bay Leaf", "Nutmeg", "Mace"},
			UsageInstructions: "Add 1-2 teaspoons to your curry during final stages of cooking for best aroma and flavor.",
			ShelfLife:         "12 months from date of packaging",
			Certifications:    []string{"FSSAI", "ISO 22000", "Organic"},
			Tags:              []string{"best-seller", "premium", "authentic"},
			IsFeatured:        true,
			IsBestSeller:      true,
			Rating:            4.8,
			ReviewCount:       1247,
			MinOrderQuantity:  1,
			MaxOrderQuantity:  50,
		},
		{
			ID:          "2",
			Slug:        "turmeric-powder",
			Name:        "Turmeric Powder",
			Description: "Pure, organic turmeric powder with high curcumin content. Sourced from the best farms in India for authentic color and health benefits.",
			Category:    "Pure Spices",
			Variants: []Variant{
				{ID: "tp-100g", Name: "100g", SKU: "EVR-TP-100", Price: rupees(50), CompareAtPrice: rupees(60), Stock: 1000, Weight: 100, IsAvailable: true},
				{ID: "tp-200g", Name: "200g", SKU: "EVR-TP-200", Price: rupees(95), CompareAtPrice: rupees(115), Stock: 800, Weight: 200, IsAvailable: true},
				{ID: "tp-500g", Name: "500g", SKU: "EVR-TP-500", Price: rupees(220), CompareAtPrice: rupees(270), Stock: 400, Weight: 500, IsAvailable: true},
			},
			Images: []string{"/products/turmeric-1.jpg", "/products/turmeric-2.jpg"},
			Features: []string{
				"High curcumin content (5%+)",
				"Organically grown",
				"Vibrant golden color",
				"Anti-inflammatory properties",
			},
			Ingredients:       []string{"100% Pure Turmeric"},
			UsageInstructions: "Use 1/2 teaspoon per serving in curries, dal, or golden milk.",
			ShelfLife:         "18 months from date of packaging",
			Certifications:    []string{"FSSAI", "Organic India", "ISO 22000"},
			Tags:              []string{"organic", "health", "best-seller"},
			IsFeatured:        true,
			IsBestSeller:      true,
			Rating:            4.9,
			ReviewCount:       2341,
			MinOrderQuantity:  1,
			MaxOrderQuantity:  100,
		},
		{
			ID:          "3",
			Slug:        "eazy-chef-paneer-tikka-masala",
			Name:        "Eazy Chef - Paneer Tikka Masala",
			Description: "Complete spice mix for restaurant-style Paneer Tikka Masala. Be a chef in minutes! Just add paneer and follow simple instructions.",
			Category:    "Eazy Chef",
			Variants: []Variant{
				{ID: "ec-ptm-50g", Name: "50g Pack", SKU: "EVR-EC-PTM-50", Price: rupees(40), Stock: 600, Weight: 50, IsAvailable: true},
			},
			Images: []string{"/products/eazy-chef-paneer-tikka.jpg"},
			Features: []string{
				"Ready in 15 minutes",
				"Restaurant-style taste",
				"No chopping or grinding",
				"Serves 4 people",
			},
			Ingredients:       []string{"Coriander", "Cumin", "Red Chilli", "Kasuri Methi", "Garam Masala", "Ginger", "Garlic", "Tomato Powder"},
			UsageInstructions: "Mix with yogurt, marinate paneer, cook with gravy base. Detailed recipe inside.",
			ShelfLife:         "12 months from date of packaging",
			Certifications:    []string{"FSSAI", "ISO 22000"},
			Tags:              []string{"new", "quick-cook", "easy"},
			IsFeatured:        true,
			IsNew:             true,
			Rating:            4.7,
			ReviewCount:       456,
			MinOrderQuantity:  1,
			MaxOrderQuantity:  30,
		},
		{
			ID:          "4",
			Slug:        "red-chilli-powder",
			Name:        "Red Chilli Powder",
			Description: "Premium red chilli powder with perfect balance of heat and color. Made from carefully selected chillies for authentic Indian taste.",
			Category:    "Pure Spices",
			Variants: []Variant{
				{ID: "rcp-100g", Name: "100g", SKU: "EVR-RCP-100", Price: rupees(55), CompareAtPrice: rupees(65), Stock: 900, Weight: 100, IsAvailable: true},
				{ID: "rcp-200g", Name: "200g", SKU: "EVR-RCP-200", Price: rupees(105), CompareAtPrice: rupees(125), Stock: 700, Weight: 200, IsAvailable: true},
				{ID: "rcp-500g", Name: "500g", SKU: "EVR-RCP-500", Price: rupees(245), CompareAtPrice: rupees(295), Stock: 300, Weight: 500, IsAvailable: true},
			},
			Images: []string{"/products/red-chilli-powder-1.jpg"},
			Features: []string{
				"Perfect heat level",
				"Rich red color",
				"No artificial colors",
				"Triple-washed and sun-dried",
			},
			UsageInstructions: "Use according to taste preference. Start with 1/2 teaspoon and adjust.",
			ShelfLife:         "12 months from date of packaging",
			Certifications:    []string{"FSSAI", "ISO 22000"},
			Tags:              []string{"essential", "pure"},
			IsBestSeller:      true,
			Rating:            4.6,
			ReviewCount:       1876,
			MinOrderQuantity:  1,
			MaxOrderQuantity:  100,
		},
		{
			ID:          "5",
			Slug:        "biryani-masala",
			Name:        "Biryani Masala",
			Description: "Aromatic blend of spices specially crafted for authentic biryani. Perfect for both vegetable and meat biryani.",
			Category:    "Blended Spices",
			Subcategory: "Rice Specialties",
			Variants: []Variant{
				{ID: "bm-50g", Name: "50g", SKU: "EVR-BM-50", Price: rupees(50), Stock: 400, Weight: 50, IsAvailable: true},
				{ID: "bm-100g", Name: "100g", SKU: "EVR-BM-100", Price: rupees(95), Stock: 250, Weight: 100, IsAvailable: true},
			},
			Images: []string{"/products/biryani-masala-1.jpg"},
			Features: []string{
				"Authentic Hyderabadi blend",
				"Rich aroma",
				"Perfect for layering",
				"Works with all rice varieties",
			},
			Ingredients:       []string{"Coriander", "Cumin", "Black Pepper", "Cardamom", "Cinnamon", "Cloves", "Bay Leaf", "Star Anise", "Mace", "Nutmeg"},
			UsageInstructions: "Add 2 teaspoons per kg of rice/meat while cooking biryani.",
			ShelfLife:         "12 months from date of packaging",
			Certifications:    []string{"FSSAI", "ISO 22000"},
			Tags:              []string{"premium", "aromatic"},
			IsFeatured:        true,
			IsBestSeller:      true,
			Rating:            4.8,
			ReviewCount:       923,
			MinOrderQuantity:  1,
			MaxOrderQuantity:  40,
		},
	}
}
