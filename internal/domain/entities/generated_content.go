package entities

import "strings"

// GeneratedContent is what the provider returned for a try-on: the first
// inline image, if any, and any text it produced.
type GeneratedContent struct {
	imageData []byte
	mimeType  string
	texts     []string
}

func NewGeneratedContent() *GeneratedContent {
	return &GeneratedContent{}
}

func (c *GeneratedContent) SetImage(data []byte, mimeType string) {
	c.imageData = data
	c.mimeType = mimeType
}

func (c *GeneratedContent) AddText(text string) {
	if text != "" {
		c.texts = append(c.texts, text)
	}
}

func (c *GeneratedContent) HasImage() bool {
	return len(c.imageData) > 0
}

func (c *GeneratedContent) ImageData() []byte {
	return c.imageData
}

func (c *GeneratedContent) MimeType() string {
	return c.mimeType
}

func (c *GeneratedContent) Text() string {
	return strings.Join(c.texts, "")
}
