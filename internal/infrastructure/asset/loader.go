// Package asset loads the sprite sheets of an asset directory.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/drawmoon/simple/internal/infrastructure/sprite"
)

// ColorKey is the color treated as transparent in sheets without an alpha channel.
var ColorKey = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// ErrNotFound is returned when a sheet name is not in the library.
var ErrNotFound = errors.New("asset: sheet not found")

// accepted lists the file extensions that are decoded, lower case.
var accepted = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// LoadError reports an asset directory that cannot be read or a file that
// cannot be decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Library holds decoded sheets keyed by file name without extension.
type Library struct {
	sheets map[string]sprite.Sheet
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{sheets: make(map[string]sprite.Sheet)}
}

// Load decodes every .png, .jpg and .jpeg file directly inside dir of fsys.
// Sub-directories and other files are ignored.
func Load(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}

	lib := NewLibrary()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if !accepted[strings.ToLower(ext)] {
			continue
		}

		p := path.Join(dir, name)
		sheet, err := decode(fsys, p)
		if err != nil {
			return nil, &LoadError{Path: p, Err: err}
		}
		lib.Add(strings.TrimSuffix(name, ext), sheet)
	}

	log.Printf("[Asset] Loaded %d sheets from %s", lib.Len(), dir)
	return lib, nil
}

func decode(fsys fs.FS, p string) (sprite.Sheet, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return sprite.Sheet{}, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return sprite.Sheet{}, err
	}

	if !isOpaque(img) {
		return sprite.Sheet{Image: img, HasAlpha: true}, nil
	}

	keyed := image.NewNRGBA(img.Bounds())
	draw.Draw(keyed, keyed.Rect, img, img.Bounds().Min, draw.Src)
	sprite.ApplyColorKey(keyed, ColorKey)
	return sprite.Sheet{Image: keyed}, nil
}

// isOpaque reports whether img has no transparent or translucent pixel.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// Add registers sheet under name, replacing any previous sheet.
func (l *Library) Add(name string, sheet sprite.Sheet) {
	l.sheets[name] = sheet
}

// Sheet returns the sheet registered under name.
func (l *Library) Sheet(name string) (sprite.Sheet, error) {
	sheet, ok := l.sheets[name]
	if !ok {
		return sprite.Sheet{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return sheet, nil
}

// Names returns the sorted sheet names.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.sheets))
	for name := range l.sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of sheets.
func (l *Library) Len() int {
	return len(l.sheets)
}
