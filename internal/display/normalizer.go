package display

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"carbazaar-api/internal/model"
	"carbazaar-api/internal/resolve"
)

// lakh is the Indian display unit for car prices.
const lakh = 100_000

// Claimed-to-real-world mileage correction factors, applied only when the
// catalog has no measured figures.
const (
	cityMileageFactor    = 0.85
	highwayMileageFactor = 1.10
)

// stockImages cover variants where neither the variant nor its model has any
// photography yet.
var stockImages = []string{
	"https://static.carbazaar.in/placeholders/exterior-front.jpg",
	"https://static.carbazaar.in/placeholders/exterior-rear.jpg",
	"https://static.carbazaar.in/placeholders/cabin.jpg",
}

// Normalizer maps raw catalog records into complete display records. It is a
// pure mapping: every field has a total default, it never fails, and the
// same input always yields the same output.
type Normalizer struct {
	origin  string
	printer *message.Printer
}

// NewNormalizer creates a normalizer that prefixes relative image paths with
// the catalog origin.
func NewNormalizer(catalogOrigin string) *Normalizer {
	return &Normalizer{
		origin:  strings.TrimRight(catalogOrigin, "/"),
		printer: message.NewPrinter(language.MustParse("en-IN")),
	}
}

// Variant builds the display record for one resolved variant.
func (n *Normalizer) Variant(brand model.Brand, carModel model.CarModel, v model.Variant) model.VariantDisplay {
	d := model.VariantDisplay{
		// Concatenation order is fixed; link slugs and page titles both
		// depend on it.
		FullName:     brand.Name + " " + carModel.Name + " " + v.Name,
		Slug:         resolve.Slug(v.Name),
		Fuel:         v.Fuel,
		Transmission: v.Transmission,
		MaxPower:     v.MaxPower,
		Images:       n.imageURLs(v, carModel),
		Specs:        v.Specs,
	}

	if v.Price != nil {
		d.PriceLakh = round2(float64(*v.Price) / lakh)
		d.PriceText = n.printer.Sprintf("₹ %.2f Lakh", d.PriceLakh)
		d.HasPrice = true
	}

	if v.MileageCityReal != nil {
		d.MileageCity = *v.MileageCityReal
	} else if v.MileageClaimed != nil {
		d.MileageCity = round1(*v.MileageClaimed * cityMileageFactor)
		d.MileageCityEstimated = true
	}
	if v.MileageHighwayReal != nil {
		d.MileageHighway = *v.MileageHighwayReal
	} else if v.MileageClaimed != nil {
		d.MileageHighway = round1(*v.MileageClaimed * highwayMileageFactor)
		d.MileageHighwayEstimated = true
	}

	d.Description = n.bulletsOrFallback(v.Description, brand, carModel, v)
	d.EngineSummary = Bullets(v.EngineSummary)
	d.ExteriorSummary = Bullets(v.ExteriorSummary)
	d.ComfortSummary = Bullets(v.ComfortSummary)

	return d
}

// Summary builds the compact sibling row for listing sections.
func (n *Normalizer) Summary(v model.Variant) model.VariantSummary {
	s := model.VariantSummary{
		ID:           v.ID,
		Name:         v.Name,
		Slug:         resolve.Slug(v.Name),
		Fuel:         v.Fuel,
		Transmission: v.Transmission,
	}
	if v.Price != nil {
		s.PriceLakh = round2(float64(*v.Price) / lakh)
		s.PriceText = n.printer.Sprintf("₹ %.2f Lakh", s.PriceLakh)
		s.HasPrice = true
	}
	return s
}

// ModelCard builds the brand-page row for one model line, with its link
// slug and an absolute hero image URL.
func (n *Normalizer) ModelCard(m model.CarModel) model.ModelCard {
	card := model.ModelCard{
		ID:            m.ID,
		Name:          m.Name,
		Slug:          resolve.Slug(m.Name),
		FuelTypes:     m.FuelTypes,
		Transmissions: m.Transmissions,
	}
	if m.HeroImage != "" {
		card.HeroImage = n.absoluteURL(m.HeroImage)
	}
	return card
}

// imageURLs resolves the image set: variant highlights first, then the
// model gallery, then stock placeholders.
func (n *Normalizer) imageURLs(v model.Variant, carModel model.CarModel) []string {
	src := v.HighlightImages
	if len(src) == 0 {
		src = carModel.GalleryImages
	}
	if len(src) == 0 {
		return append([]string(nil), stockImages...)
	}
	urls := make([]string, 0, len(src))
	for _, img := range src {
		if img.URL == "" {
			continue
		}
		urls = append(urls, n.absoluteURL(img.URL))
	}
	if len(urls) == 0 {
		return append([]string(nil), stockImages...)
	}
	return urls
}

// absoluteURL prefixes catalog-relative paths with the configured origin.
func (n *Normalizer) absoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return n.origin + path
}

// bulletsOrFallback parses the description blob, or composes a templated
// sentence when the catalog has none. The fallback is generated content,
// not an error.
func (n *Normalizer) bulletsOrFallback(raw string, brand model.Brand, carModel model.CarModel, v model.Variant) []string {
	if bullets := Bullets(raw); len(bullets) > 0 {
		return bullets
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The %s %s %s is a", brand.Name, carModel.Name, v.Name)
	if v.Fuel != "" {
		fmt.Fprintf(&b, " %s", strings.ToLower(v.Fuel))
	}
	b.WriteString(" variant")
	if v.Transmission != "" {
		fmt.Fprintf(&b, " with a %s gearbox", strings.ToLower(v.Transmission))
	}
	fmt.Fprintf(&b, ", offered as part of the %s %s range.", brand.Name, carModel.Name)
	return []string{b.String()}
}

// Bullets normalizes a newline-delimited blob into clean list items: lines
// are trimmed, empty lines dropped, and a single leading bullet marker
// ("•", "-" or "*" followed by whitespace) stripped from each.
func Bullets(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = stripMarker(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func stripMarker(line string) string {
	for _, marker := range []string{"•", "-", "*"} {
		rest, ok := strings.CutPrefix(line, marker)
		if !ok {
			continue
		}
		// The marker only counts when whitespace (or nothing, for a line
		// that was just a marker) follows it; "-something" is a word, not
		// a bullet.
		if rest == "" || strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t") {
			return strings.TrimSpace(rest)
		}
	}
	return line
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
