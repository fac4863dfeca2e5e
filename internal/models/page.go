// ABOUTME: Page and ContentType types consumed by the router
// ABOUTME: Content type biases tool selection; unknown types fall back to text
package models

// ContentType classifies a page's primary medium
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentCode  ContentType = "code"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
)

// IsValid reports whether the content type is one of the known media
func (c ContentType) IsValid() bool {
	switch c {
	case ContentText, ContentCode, ContentImage, ContentVideo:
		return true
	}
	return false
}

// Normalize maps unknown or empty content types to text
func (c ContentType) Normalize() ContentType {
	if c.IsValid() {
		return c
	}
	return ContentText
}

// PreferredTool returns the tool this content type biases toward
func (c ContentType) PreferredTool() Tool {
	switch c {
	case ContentVideo:
		return ToolVideoSummarizer
	case ContentImage:
		return ToolImageInsights
	case ContentCode:
		return ToolCodeAssistant
	}
	return ToolSearch
}

// Page is a routable unit of content identified by its title
type Page struct {
	Title       string      `json:"title"`
	ContentType ContentType `json:"content_type"`
}

// NewPage creates a page with a normalized content type
func NewPage(title string, contentType ContentType) Page {
	return Page{
		Title:       title,
		ContentType: contentType.Normalize(),
	}
}
