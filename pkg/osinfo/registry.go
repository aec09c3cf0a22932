package osinfo

// Holds the resolver backed by the embedded catalog.
var defaultResolver = NewResolver(loadBuiltinCatalog())

// DefaultResolver returns the resolver backed by the embedded catalog.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// Resolve runs the default resolver against src.
func Resolve(src Source) (string, error) {
	return defaultResolver.Resolve(src)
}
