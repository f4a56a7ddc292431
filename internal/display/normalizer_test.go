package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbazaar-api/internal/model"
)

const origin = "http://localhost:1337"

var (
	hyundai = model.Brand{ID: "H1", Name: "Hyundai"}
	i20     = model.CarModel{ID: "M1", BrandID: "H1", Name: "i20"}
)

func price(v int64) *int64    { return &v }
func kmpl(v float64) *float64 { return &v }

func TestVariantPriceInLakh(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{Name: "Asta 1.2 Petrol", Price: price(950000)})
	assert.Equal(t, 9.50, d.PriceLakh)
	assert.True(t, d.HasPrice)
	assert.Contains(t, d.PriceText, "9.50")
	assert.Contains(t, d.PriceText, "Lakh")
}

func TestVariantPriceAbsent(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{Name: "Asta 1.2 Petrol"})
	assert.Zero(t, d.PriceLakh)
	assert.False(t, d.HasPrice)
	assert.Empty(t, d.PriceText)
}

func TestVariantFullName(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{Name: "Asta 1.2 Petrol"})
	assert.Equal(t, "Hyundai i20 Asta 1.2 Petrol", d.FullName)
	assert.Equal(t, "asta-1-2-petrol", d.Slug)
}

func TestVariantMileageDerivedFromClaimed(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{Name: "Asta", MileageClaimed: kmpl(20)})
	assert.Equal(t, 17.0, d.MileageCity)
	assert.Equal(t, 22.0, d.MileageHighway)
	assert.True(t, d.MileageCityEstimated)
	assert.True(t, d.MileageHighwayEstimated)
}

func TestVariantMileageRounding(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{Name: "Asta", MileageClaimed: kmpl(18)})
	assert.Equal(t, 15.3, d.MileageCity)    // 18 * 0.85 = 15.3
	assert.Equal(t, 19.8, d.MileageHighway) // 18 * 1.10 = 19.8
}

func TestVariantMileageRealWorldWins(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{
		Name:               "Asta",
		MileageClaimed:     kmpl(20),
		MileageCityReal:    kmpl(15.2),
		MileageHighwayReal: kmpl(19.8),
	})
	assert.Equal(t, 15.2, d.MileageCity)
	assert.Equal(t, 19.8, d.MileageHighway)
	assert.False(t, d.MileageCityEstimated)
	assert.False(t, d.MileageHighwayEstimated)
}

func TestVariantMileageMixedMeasuredAndDerived(t *testing.T) {
	n := NewNormalizer(origin)

	// Only the city figure is measured: the highway estimate must not
	// drag the measured figure down to estimate status.
	d := n.Variant(hyundai, i20, model.Variant{
		Name:            "Asta",
		MileageClaimed:  kmpl(20),
		MileageCityReal: kmpl(15.2),
	})
	assert.Equal(t, 15.2, d.MileageCity)
	assert.False(t, d.MileageCityEstimated)
	assert.Equal(t, 22.0, d.MileageHighway)
	assert.True(t, d.MileageHighwayEstimated)
}

func TestVariantImagePrecedence(t *testing.T) {
	n := NewNormalizer(origin)

	withHighlights := model.Variant{
		Name:            "Asta",
		HighlightImages: []model.Image{{URL: "/uploads/asta-front.jpg"}},
	}
	withGallery := model.CarModel{
		Name:          "i20",
		GalleryImages: []model.Image{{URL: "https://cdn.example.com/i20.jpg"}},
	}

	d := n.Variant(hyundai, withGallery, withHighlights)
	require.Len(t, d.Images, 1)
	assert.Equal(t, origin+"/uploads/asta-front.jpg", d.Images[0], "relative paths get the catalog origin")

	d = n.Variant(hyundai, withGallery, model.Variant{Name: "Asta"})
	require.Len(t, d.Images, 1)
	assert.Equal(t, "https://cdn.example.com/i20.jpg", d.Images[0], "absolute URLs pass through")

	d = n.Variant(hyundai, i20, model.Variant{Name: "Asta"})
	assert.Equal(t, stockImages, d.Images, "stock placeholders when nothing has photos")
}

func TestVariantDescriptionBullets(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{
		Name:        "Asta",
		Description: "• Feature A\n- Feature B\n\n* Feature C",
	})
	assert.Equal(t, []string{"Feature A", "Feature B", "Feature C"}, d.Description)
}

func TestVariantDescriptionFallbackSentence(t *testing.T) {
	n := NewNormalizer(origin)

	d := n.Variant(hyundai, i20, model.Variant{
		Name:         "Asta 1.2",
		Fuel:         "Petrol",
		Transmission: "Manual",
	})
	require.Len(t, d.Description, 1)
	assert.Contains(t, d.Description[0], "Hyundai i20 Asta 1.2")
	assert.Contains(t, d.Description[0], "petrol")
	assert.Contains(t, d.Description[0], "manual gearbox")
}

func TestVariantTotalOnEmptyRecord(t *testing.T) {
	n := NewNormalizer(origin)

	// Every optional field absent: normalization still completes with a
	// fully-populated record.
	d := n.Variant(model.Brand{}, model.CarModel{}, model.Variant{})
	assert.False(t, d.HasPrice)
	assert.NotEmpty(t, d.Images)
	assert.NotEmpty(t, d.Description)
}

func TestBullets(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"markers stripped", "• Feature A\n- Feature B\n\n* Feature C", []string{"Feature A", "Feature B", "Feature C"}},
		{"marker needs trailing whitespace", "-feature\n*bold*", []string{"-feature", "*bold*"}},
		{"marker-only lines dropped", "- \n•\n* \n- Feature", []string{"Feature"}},
		{"plain lines kept", "one\ntwo", []string{"one", "two"}},
		{"whitespace only", "  \n\t\n", nil},
		{"empty", "", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Bullets(c.in))
		})
	}
}

func TestModelCard(t *testing.T) {
	n := NewNormalizer(origin)

	card := n.ModelCard(model.CarModel{
		ID:        "M1",
		Name:      "i20 N Line",
		HeroImage: "/uploads/i20-n-line.jpg",
		FuelTypes: []string{"Petrol"},
	})
	assert.Equal(t, "i20-n-line", card.Slug)
	assert.Equal(t, origin+"/uploads/i20-n-line.jpg", card.HeroImage)
	assert.Equal(t, []string{"Petrol"}, card.FuelTypes)

	card = n.ModelCard(model.CarModel{ID: "M2", Name: "Creta"})
	assert.Empty(t, card.HeroImage, "no placeholder on cards, the page handles it")
}

func TestSummary(t *testing.T) {
	n := NewNormalizer(origin)

	s := n.Summary(model.Variant{ID: "V2", Name: "Sportz 1.2 Petrol", Price: price(820000), Fuel: "Petrol"})
	assert.Equal(t, "sportz-1-2-petrol", s.Slug)
	assert.Equal(t, 8.20, s.PriceLakh)
	assert.True(t, s.HasPrice)

	s = n.Summary(model.Variant{ID: "V3", Name: "Era"})
	assert.False(t, s.HasPrice)
	assert.Empty(t, s.PriceText)
}
