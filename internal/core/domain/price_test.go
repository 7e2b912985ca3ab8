package domain

import "testing"

func TestParsePriceAmount(t *testing.T) {
	tests := []struct {
		display string
		want    float64
	}{
		{"$1,234,567 MXN", 1234567},
		{"$950,000", 950000},
		{"1,234", 1234},
		{"USD 99", 99},
		// Both separators present: European grouping.
		{"1.234.567,89", 1234567.89},
		{"$1.500.000,00 MXN", 1500000},
		// Single dot stays a decimal point.
		{"1200.50", 1200.50},
		{"", 0},
		{"Consultar precio", 0},
		{"-500", 0},
	}

	for _, tt := range tests {
		got := ParsePriceAmount(tt.display)
		if got != tt.want {
			t.Errorf("ParsePriceAmount(%q) = %v; want %v", tt.display, got, tt.want)
		}
	}
}

func TestMergeDetail(t *testing.T) {
	lat, lng := 19.43, -99.13
	raw := RawListing{
		ExternalID:  "EB-1",
		Description: "short",
		GalleryURLs: []string{"a.jpg"},
	}

	raw.MergeDetail(&ListingDetail{
		Description:   "full description",
		TitleImageURL: "cover.jpg",
		GalleryURLs:   []string{"b.jpg", "c.jpg"},
		Latitude:      &lat,
		Longitude:     &lng,
	})

	if raw.Description != "full description" {
		t.Errorf("Description = %q; want %q", raw.Description, "full description")
	}
	if raw.TitleImageURL != "cover.jpg" {
		t.Errorf("TitleImageURL = %q; want %q", raw.TitleImageURL, "cover.jpg")
	}
	if len(raw.GalleryURLs) != 3 {
		t.Errorf("GalleryURLs = %v; want 3 entries", raw.GalleryURLs)
	}
	if raw.Latitude == nil || *raw.Latitude != lat {
		t.Errorf("Latitude not merged")
	}

	// A nil detail leaves the summary untouched.
	before := raw
	raw.MergeDetail(nil)
	if raw.Description != before.Description || len(raw.GalleryURLs) != len(before.GalleryURLs) {
		t.Errorf("MergeDetail(nil) modified the listing")
	}
}
