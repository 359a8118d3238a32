package catalog

var englishCategories = []categoryDef{
	{
		key:   "family",
		title: "Family",
		words: []string{"mommy", "daddy", "baby", "grandma", "grandpa", "brother", "sister", "aunt", "uncle"},
	},
	{
		key:   "food",
		title: "Food",
		words: []string{"milk", "water", "banana", "apple", "bread", "cookie", "juice", "cheese", "egg", "yogurt"},
	},
	{
		key:   "actions",
		title: "Actions",
		words: []string{"eat", "drink", "sleep", "play", "go", "up", "down", "run", "jump", "hug", "kiss", "more"},
	},
	{
		key:   "body",
		title: "Body",
		words: []string{"head", "eyes", "nose", "mouth", "ears", "hands", "feet", "tummy", "hair", "teeth"},
	},
	{
		key:   "toys",
		title: "Toys",
		words: []string{"ball", "car", "doll", "book", "blocks", "teddy", "train", "puzzle", "bubbles"},
	},
	{
		key:   "colors",
		title: "Colors",
		words: []string{"red", "blue", "yellow", "green", "orange", "purple", "pink", "black", "white"},
	},
	{
		key:   "animals",
		title: "Animals",
		words: []string{"dog", "cat", "bird", "fish", "cow", "horse", "duck", "pig", "sheep", "lion", "bunny"},
	},
	{
		key:   "greetings",
		title: "Greetings",
		words: []string{"hi", "hello", "bye-bye", "please", "thank you", "yes", "no", "night-night"},
	},
	{
		key:   OtherCategoryKey,
		title: "Other",
		words: []string{},
	},
}
