package classify

// The fixed 20-category grocery taxonomy. Deals and favorites are tagged
// with exactly one of these; names that match nothing fall into
// CategoryMiscellaneous.
const (
	CategoryFruits        = "Fruits"
	CategoryVegetables    = "Vegetables"
	CategoryMeatPoultry   = "Meat & Poultry"
	CategorySeafood       = "Seafood"
	CategoryDairyEggs     = "Dairy & Eggs"
	CategoryBakeryBread   = "Bakery & Bread"
	CategoryPantryStaples = "Pantry Staples"
	CategorySnacksCandy   = "Snacks & Candy"
	CategoryFrozenFoods   = "Frozen Foods"
	CategoryBeverages     = "Beverages"
	CategoryAlcoholic     = "Alcoholic Beverages"
	CategoryDeliPrepared  = "Deli & Prepared Foods"
	CategoryBreakfast     = "Breakfast & Cereal"
	CategoryPastaRice     = "Pasta, Rice & Grains"
	CategoryOilsSauces    = "Oils, Sauces & Spices"
	CategoryBabyKids      = "Baby & Kids"
	CategoryHealth        = "Health & Nutrition"
	CategoryHousehold     = "Household Essentials"
	CategoryPersonalCare  = "Personal Care"
	CategoryPetSupplies   = "Pet Supplies"

	// CategoryMiscellaneous is the fallback for unmatched names.
	CategoryMiscellaneous = "Miscellaneous"
)

// Categories lists the taxonomy in its fixed order. The order doubles as
// the tie-breaker when keyword scores are equal, so it must stay stable.
var Categories = []string{
	CategoryFruits,
	CategoryVegetables,
	CategoryMeatPoultry,
	CategorySeafood,
	CategoryDairyEggs,
	CategoryBakeryBread,
	CategoryPantryStaples,
	CategorySnacksCandy,
	CategoryFrozenFoods,
	CategoryBeverages,
	CategoryAlcoholic,
	CategoryDeliPrepared,
	CategoryBreakfast,
	CategoryPastaRice,
	CategoryOilsSauces,
	CategoryBabyKids,
	CategoryHealth,
	CategoryHousehold,
	CategoryPersonalCare,
	CategoryPetSupplies,
}

// categoryKeywords maps each category to the lowercase keywords that vote
// for it. A name is scored by counting contained keywords per category;
// the highest score wins.
var categoryKeywords = map[string][]string{
	CategoryDairyEggs: {
		"milk", "cheese", "yogurt", "butter", "cream", "eggs", "dairy",
		"cheddar", "mozzarella", "parmesan", "sour cream", "cottage cheese",
	},
	CategoryFruits: {
		"apple", "banana", "orange", "grape", "berry", "strawberry",
		"melon", "watermelon", "pear", "peach", "plum", "cherry",
	},
	CategoryVegetables: {
		"lettuce", "tomato", "carrot", "broccoli", "pepper", "onion",
		"cucumber", "spinach", "celery", "potato", "cabbage",
	},
	CategoryMeatPoultry: {
		"beef", "chicken", "pork", "turkey", "lamb", "steak",
		"ground beef", "chicken breast", "bacon", "sausage",
	},
	CategorySeafood: {
		"fish", "salmon", "tuna", "shrimp", "crab", "lobster",
		"tilapia", "cod", "seafood",
	},
	CategoryBakeryBread: {
		"bread", "bagel", "muffin", "cake", "pastry",
		"donut", "croissant", "baguette", "roll",
	},
	CategoryBreakfast: {
		"cereal", "granola", "oatmeal", "oats", "cornflakes",
		"breakfast", "pancake mix", "waffle",
	},
	CategorySnacksCandy: {
		"chips", "crackers", "candy", "chocolate", "pretzels",
		"popcorn", "nuts", "trail mix", "cookie",
	},
	CategoryFrozenFoods: {
		"frozen", "ice cream", "frozen pizza", "frozen dinner",
		"popsicle", "frozen vegetables", "frozen fruit",
	},
	CategoryBeverages: {
		"juice", "soda", "water", "coffee", "tea", "energy drink",
		"sports drink", "lemonade", "iced tea",
	},
	CategoryAlcoholic: {
		"beer", "wine", "liquor", "vodka", "whiskey", "champagne",
		"ale", "lager", "spirits",
	},
	CategoryPantryStaples: {
		"flour", "sugar", "canned", "beans", "soup", "ketchup", "mustard",
	},
	CategoryPastaRice: {
		"pasta", "rice", "spaghetti", "noodle", "quinoa", "grain",
	},
	CategoryOilsSauces: {
		"oil", "vinegar", "sauce", "spice", "seasoning", "salsa",
		"soy sauce", "curry",
	},
	CategoryDeliPrepared: {
		"deli", "rotisserie", "sandwich", "salad", "prepared",
		"ready-to-eat", "cooked chicken",
	},
	CategoryHealth: {
		"vitamin", "supplement", "protein", "protein bar",
		"nutrition", "health", "diet", "fitness",
	},
	CategoryHousehold: {
		"detergent", "paper towel", "toilet paper",
		"cleaner", "trash bag", "aluminum foil", "cleaning",
	},
	CategoryPersonalCare: {
		"shampoo", "toothpaste", "deodorant", "lotion",
		"soap", "body wash", "skincare", "cosmetics",
	},
	CategoryBabyKids: {
		"baby", "diaper", "formula", "baby food", "wipes",
		"kids", "children", "toddler",
	},
	CategoryPetSupplies: {
		"dog", "cat", "pet", "dog food", "cat food",
		"pet food", "treats", "litter",
	},
}

// ValidCategory reports whether name is one of the fixed taxonomy
// categories or the Miscellaneous fallback.
func ValidCategory(name string) bool {
	if name == CategoryMiscellaneous {
		return true
	}
	for _, c := range Categories {
		if c == name {
			return true
		}
	}

	return false
}
