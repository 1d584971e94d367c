package title

// Filter defines parameters for searching and paginating titles.
type Filter struct {
	// CategorySlug keeps only titles in the category with this slug.
	CategorySlug *string

	// GenreSlug keeps only titles linked to the genre with this slug.
	GenreSlug *string

	// Name performs ILIKE '%...%' on the title name.
	Name *string

	// Year keeps only titles released in this exact year.
	Year *int

	// Limit is the maximum number of titles to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of titles to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
