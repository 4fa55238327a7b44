package datasources

// CatalogRepository is the full persistence surface, implemented by the
// MySQL repository. Callers should depend on the narrow interfaces instead
// wherever possible.
type CatalogRepository interface {
	EntityRepository
	ReviewRepository
	UserRepository
	PersonRepository
	CharacterRepository
	ArticleRepository
	AwardRepository
}
