// Command base64 builds a ready-to-POST /api/generate body from two image files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	appservices "tryon-api/internal/application/services"
	"tryon-api/internal/domain/valueobjects"
)

var validExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func main() {
	person := flag.String("person", "", "person photo (jpg, png, gif, webp)")
	garment := flag.String("garment", "", "garment photo (jpg, png, gif, webp)")
	style := flag.String("style", string(valueobjects.StyleStudio), "studio, outdoor, lifestyle or editorial")
	category := flag.String("category", valueobjects.DefaultCategory, "garment category")
	imageURL := flag.String("image-url", "", "original image URL echoed back by the server")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *person == "" || *garment == "" {
		flag.Usage()
		os.Exit(2)
	}

	payload, err := buildPayload(*person, *garment, *style, *category, *imageURL)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Println(string(payload))
		return
	}
	if err := os.WriteFile(*out, payload, 0644); err != nil {
		log.Fatal(err)
	}
}

func buildPayload(personPath, garmentPath, style, category, imageURL string) ([]byte, error) {
	personURL, err := encode(personPath)
	if err != nil {
		return nil, err
	}
	garmentURL, err := encode(garmentPath)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = filepath.Base(personPath)
	}

	return json.MarshalIndent(appservices.GenerateRequest{
		ImageURL:      &imageURL,
		ImageBase64:   personURL,
		Style:         style,
		GarmentBase64: garmentURL,
		Category:      category,
	}, "", "  ")
}

// encode reads an image file and returns it as a data URL.
func encode(file string) (string, error) {
	if !slices.Contains(validExtensions, strings.ToLower(filepath.Ext(file))) {
		return "", fmt.Errorf("%s: unsupported extension", file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	img, err := valueobjects.NewImageData(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}
	if img.Format() == valueobjects.Unknown {
		return "", fmt.Errorf("%s: not a jpeg, png, gif or webp image", file)
	}

	return img.ToDataURL(), nil
}
