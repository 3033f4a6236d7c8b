package v1

import "github.com/bookly/bookly/model"

// sampleBooks is the demo catalog served by the populate endpoint.
var sampleBooks = []*model.BookUpsertRequest{
	{
		Title:         "The Hobbit",
		Author:        "J.R.R. Tolkien",
		Genre:         "Fantasy",
		MoodTags:      "adventurous,whimsical,uplifting",
		Description:   "A reluctant hobbit embarks on an unexpected journey filled with adventure, treasure, and self-discovery.",
		CoverImageURL: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400",
	},
	{
		Title:         "Murder on the Orient Express",
		Author:        "Agatha Christie",
		Genre:         "Mystery",
		MoodTags:      "mysterious,suspenseful,intriguing",
		Description:   "Detective Hercule Poirot investigates a murder aboard the famous Orient Express train.",
		CoverImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400",
	},
	{
		Title:         "The Alchemist",
		Author:        "Paulo Coelho",
		Genre:         "Philosophy",
		MoodTags:      "inspirational,uplifting,contemplative",
		Description:   "A young shepherd's journey to find treasure leads to profound self-discovery.",
		CoverImageURL: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
	},
	{
		Title:         "Gone Girl",
		Author:        "Gillian Flynn",
		Genre:         "Thriller",
		MoodTags:      "dark,suspenseful,psychological",
		Description:   "A psychological thriller about a marriage gone terribly wrong.",
		CoverImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
	},
	{
		Title:         "Pride and Prejudice",
		Author:        "Jane Austen",
		Genre:         "Romance",
		MoodTags:      "romantic,witty,charming",
		Description:   "A classic tale of love, misunderstandings, and social commentary in Regency England.",
		CoverImageURL: "https://images.unsplash.com/photo-1518373714866-3f1478910cc0?w=400",
	},
	{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "Science Fiction",
		MoodTags:      "epic,adventurous,complex",
		Description:   "A epic space opera set on the desert planet Arrakis, following Paul Atreides' rise to power.",
		CoverImageURL: "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=400",
	},
	{
		Title:         "The Midnight Library",
		Author:        "Matt Haig",
		Genre:         "Fiction",
		MoodTags:      "contemplative,uplifting,philosophical",
		Description:   "A woman finds herself in a magical library between life and death, exploring alternate lives.",
		CoverImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400",
	},
	{
		Title:         "The Girl with the Dragon Tattoo",
		Author:        "Stieg Larsson",
		Genre:         "Thriller",
		MoodTags:      "dark,mysterious,intense",
		Description:   "A journalist and a hacker investigate a decades-old disappearance in Sweden.",
		CoverImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
	},
	{
		Title:         "The Lord of the Rings",
		Author:        "J.R.R. Tolkien",
		Genre:         "Fantasy",
		MoodTags:      "epic,adventurous,heroic",
		Description:   "An epic fantasy adventure following the quest to destroy the One Ring.",
		CoverImageURL: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400",
	},
	{
		Title:         "To Kill a Mockingbird",
		Author:        "Harper Lee",
		Genre:         "Classic",
		MoodTags:      "thoughtful,emotional,educational",
		Description:   "A powerful story of racial injustice and childhood innocence in the American South.",
		CoverImageURL: "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400",
	},
	{
		Title:         "The Catcher in the Rye",
		Author:        "J.D. Salinger",
		Genre:         "Classic",
		MoodTags:      "introspective,melancholy,rebellious",
		Description:   "A teenager's alienated journey through New York City over a few days.",
		CoverImageURL: "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400",
	},
	{
		Title:         "The Great Gatsby",
		Author:        "F. Scott Fitzgerald",
		Genre:         "Classic",
		MoodTags:      "glamorous,tragic,nostalgic",
		Description:   "A critique of the American Dream set in the Jazz Age.",
		CoverImageURL: "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400",
	},
	{
		Title:         "Harry Potter and the Sorcerer's Stone",
		Author:        "J.K. Rowling",
		Genre:         "Fantasy",
		MoodTags:      "magical,adventurous,uplifting",
		Description:   "A young wizard discovers his magical heritage and begins his education at Hogwarts.",
		CoverImageURL: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400",
	},
	{
		Title:         "1984",
		Author:        "George Orwell",
		Genre:         "Dystopian",
		MoodTags:      "dark,thought-provoking,dystopian",
		Description:   "A chilling portrayal of totalitarian society and government surveillance.",
		CoverImageURL: "https://images.unsplash.com/photo-1535905557558-afc4877cdf3f?w=400",
	},
	{
		Title:         "The Hitchhiker's Guide to the Galaxy",
		Author:        "Douglas Adams",
		Genre:         "Science Fiction",
		MoodTags:      "humorous,absurd,whimsical",
		Description:   "A comedic space adventure following Arthur Dent's journey through the galaxy.",
		CoverImageURL: "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=400",
	},
	{
		Title:         "The Silent Patient",
		Author:        "Alex Michaelides",
		Genre:         "Thriller",
		MoodTags:      "psychological,mysterious,intense",
		Description:   "A psychotherapist becomes obsessed with treating a woman who refuses to speak.",
		CoverImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
	},
	{
		Title:         "Where the Crawdads Sing",
		Author:        "Delia Owens",
		Genre:         "Fiction",
		MoodTags:      "atmospheric,emotional,contemplative",
		Description:   "A mystery and coming-of-age story set in the marshlands of North Carolina.",
		CoverImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400",
	},
	{
		Title:         "The Seven Husbands of Evelyn Hugo",
		Author:        "Taylor Jenkins Reid",
		Genre:         "Romance",
		MoodTags:      "glamorous,emotional,captivating",
		Description:   "A reclusive Hollywood icon finally tells her life story to a young journalist.",
		CoverImageURL: "https://images.unsplash.com/photo-1518373714866-3f1478910cc0?w=400",
	},
}
