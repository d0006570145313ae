package assets

// defaultLoader is the package-level embedded loader for callers that do
// not configure a custom base path.
var defaultLoader = NewEmbeddedLoader()

// DefaultStyleName is the name of the built-in style guide stylesheet.
const DefaultStyleName = "guide"

// DefaultTemplateName is the name of the built-in HTML page template.
const DefaultTemplateName = "page"

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML page template by name using the default
// embedded loader. The name should not include the .html extension.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
