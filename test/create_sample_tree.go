package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"
)

func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			b := uint8((x + y) % 255)
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return img
}

func main() {
	// Build a small year tree of EXIF-less JPEGs with pinned modification
	// times, so a rename run resolves every date from the OS fallback and the
	// result is predictable.
	img := createTestImage(400, 300)

	files := []struct {
		path string
		mod  time.Time
	}{
		{"sample/2020/IMG_0001.jpg", time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"sample/2020/IMG_0002.jpg", time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)}, // same second: mutual group
		{"sample/2020/IMG_0003.jpg", time.Date(2020, 7, 15, 18, 30, 0, 0, time.UTC)},
		{"sample/2021/DSC_0044.jpg", time.Date(2021, 3, 2, 12, 0, 0, 0, time.UTC)},
		{"sample/2021/20190315-120000.jpg", time.Date(2019, 3, 15, 12, 0, 0, 0, time.UTC)}, // misplaced: move candidate
	}

	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
			fmt.Printf("Error creating dir for %s: %v\n", f.path, err)
			continue
		}
		file, err := os.Create(f.path)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", f.path, err)
			continue
		}

		options := &jpeg.Options{Quality: 85}
		if err := jpeg.Encode(file, img, options); err != nil {
			fmt.Printf("Error encoding %s: %v\n", f.path, err)
		}
		file.Close()

		if err := os.Chtimes(f.path, f.mod, f.mod); err != nil {
			fmt.Printf("Error setting times on %s: %v\n", f.path, err)
		} else {
			fmt.Printf("Created sample file: %s (%s)\n", f.path, f.mod.Format("2006-01-02 15:04:05"))
		}
	}

	fmt.Println("\nSample tree created under sample/.")
	fmt.Println("Run `narya rename sample/2020` or `narya move sample sample-holding` against it.")
}
