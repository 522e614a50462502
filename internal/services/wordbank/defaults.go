package wordbank

import "github.com/mcoot/imposter/internal/model"

// DefaultBank returns the word bank shipped with the game
func DefaultBank() *model.WordBank {
	return &model.WordBank{Categories: []model.Category{
		{
			ID:    "clothes",
			Label: "Clothes",
			Words: []string{
				"T-shirt", "Jacket", "Trousers", "Shorts", "Dress",
				"Socks", "Boxers", "Sneakers", "Slippers", "Beanie",
				"Pyjamas", "Shirt", "Suit", "Tie", "Swimsuit",
			},
		},
		{
			ID:    "food",
			Label: "Food",
			Words: []string{
				"Instant noodles", "Lollipop", "Sugarcane juice", "Popcorn", "Watermelon",
				"Trotters", "Shawarma", "Hawawshi", "Stuffed vine leaves", "Macaroni bechamel",
				"Pizza", "Sushi", "Fesikh", "Smoked herring", "Koshari", "Molokhia",
			},
		},
		{
			ID:    "adult",
			Label: "+18",
			Words: []string{
				"Hangover", "Loose cigarette", "Cuddles", "Makeup", "Belly dancer",
				"Pregnancy test", "Bikini", "Night out", "Hookah", "Viagra", "Lingerie",
			},
		},
	}}
}
