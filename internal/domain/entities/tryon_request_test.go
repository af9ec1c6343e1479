package entities

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"tryon-api/internal/domain/valueobjects"
)

func createTestImageData(t *testing.T) *valueobjects.ImageData {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	imageData, err := valueobjects.NewImageData(buf.Bytes())
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	return imageData
}

func createTestPNGImageData(t *testing.T) *valueobjects.ImageData {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	imageData, err := valueobjects.NewImageData(buf.Bytes())
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	return imageData
}

func TestNewTryOnRequest(t *testing.T) {
	personImage := createTestImageData(t)
	garmentImage := createTestImageData(t)

	tests := []struct {
		name         string
		personImage  *valueobjects.ImageData
		garmentImage *valueobjects.ImageData
		style        valueobjects.Style
		category     string
		wantStyle    valueobjects.Style
		wantCategory string
		wantErr      bool
	}{
		{
			name:         "valid request",
			personImage:  personImage,
			garmentImage: garmentImage,
			style:        valueobjects.StyleOutdoor,
			category:     "lower_body",
			wantStyle:    valueobjects.StyleOutdoor,
			wantCategory: "lower_body",
		},
		{
			name:         "nil person image should fail",
			personImage:  nil,
			garmentImage: garmentImage,
			wantErr:      true,
		},
		{
			name:         "nil garment image should fail",
			personImage:  personImage,
			garmentImage: nil,
			wantErr:      true,
		},
		{
			name:         "empty style and category use defaults",
			personImage:  personImage,
			garmentImage: garmentImage,
			wantStyle:    valueobjects.StyleDefault,
			wantCategory: valueobjects.DefaultCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := NewTryOnRequest("https://example.com/me.jpg", "", tt.personImage, tt.garmentImage, tt.style, tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTryOnRequest() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if request.ID() == "" {
					t.Errorf("Expected non-empty ID")
				}
				if request.PersonImage() != tt.personImage {
					t.Errorf("PersonImage not set correctly")
				}
				if request.GarmentImage() != tt.garmentImage {
					t.Errorf("GarmentImage not set correctly")
				}
				if request.Style() != tt.wantStyle {
					t.Errorf("Style() = %v, want %v", request.Style(), tt.wantStyle)
				}
				if request.Category() != tt.wantCategory {
					t.Errorf("Category() = %v, want %v", request.Category(), tt.wantCategory)
				}
				if request.ImageURL() != "https://example.com/me.jpg" {
					t.Errorf("ImageURL not set correctly")
				}
			}
		})
	}
}

func TestNewTryOnRequest_UniqueIDs(t *testing.T) {
	img := createTestImageData(t)
	a, _ := NewTryOnRequest("", "", img, img, "", "")
	b, _ := NewTryOnRequest("", "", img, img, "", "")
	if a.ID() == b.ID() {
		t.Errorf("Expected distinct IDs, got %s twice", a.ID())
	}
}

func TestTryOnRequest_PrepareImages(t *testing.T) {
	personImage := createTestPNGImageData(t)
	garmentImage := createTestImageData(t)

	request, err := NewTryOnRequest("", "", personImage, garmentImage, "", "")
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	err = request.PrepareImages()
	if err != nil {
		t.Errorf("PrepareImages() error = %v", err)
	}

	if !request.PersonImage().IsJPEG() {
		t.Errorf("Person image should be JPEG after preparation")
	}

	if !request.GarmentImage().IsJPEG() {
		t.Errorf("Garment image should be JPEG after preparation")
	}
}

func TestNewEmailNotification(t *testing.T) {
	n := NewEmailNotification("a@example.com", "https://example.com/out.png", "")
	if n.UserName() != DefaultUserName {
		t.Errorf("UserName() = %q, want %q", n.UserName(), DefaultUserName)
	}

	n = NewEmailNotification("a@example.com", "https://example.com/out.png", "Rin")
	if n.UserName() != "Rin" {
		t.Errorf("UserName() = %q, want Rin", n.UserName())
	}
}

func TestGeneratedContent(t *testing.T) {
	c := NewGeneratedContent()
	if c.HasImage() {
		t.Errorf("new content should have no image")
	}

	c.AddText("I can't ")
	c.AddText("")
	c.AddText("do that.")
	if c.Text() != "I can't do that." {
		t.Errorf("Text() = %q", c.Text())
	}

	c.SetImage([]byte{1, 2, 3}, "image/png")
	if !c.HasImage() || c.MimeType() != "image/png" {
		t.Errorf("image not recorded")
	}
}
