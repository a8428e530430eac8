package services

var genreTranslations = map[string]string{
	"Ficcion":    "Fiction",
	"Misterio":   "Mystery",
	"Romance":    "Romance",
	"Fantasia":   "Fantasy",
	"Historia":   "History",
	"Biografia":  "Biography",
	"Poesia":     "Poetry",
	"Drama":      "Drama",
	"Terror":     "Horror",
	"Comic":      "Comics",
	"Novela":     "Novel",
	"Viajes":     "Travel",
	"Cocina":     "Cooking",
	"Salud":      "Health",
	"Negocios":   "Business",
	"Tecnologia": "Technology",
	"Arte":       "Art",
	"Politica":   "Politics",
	"Religion":   "Religion",
}

// TranslateGenre returns the catalog subject for a genre name.
// Unknown names are passed through unchanged.
func TranslateGenre(genre string) string {
	if en, ok := genreTranslations[genre]; ok {
		return en
	}
	return genre
}
