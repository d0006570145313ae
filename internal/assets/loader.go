package assets

// Loader resolves style guide asset names to their content. The two
// asset kinds a preview needs are a stylesheet and a page template;
// implementations back onto the embedded bundle, a directory on disk,
// or a chain of both.
type Loader interface {
	// LoadStyle returns the CSS for a stylesheet name, given without the
	// .css extension. Fails with ErrStyleNotFound for an unknown name and
	// ErrInvalidAssetName for one that is not a plain filename stem.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the HTML for a page template name, given
	// without the .html extension. Fails with ErrTemplateNotFound or
	// ErrInvalidAssetName like LoadStyle.
	LoadTemplate(name string) (string, error)
}
