package soil

import (
	"errors"
	"testing"
	"time"
)

func TestSelectBestSceneEmpty(t *testing.T) {
	_, err := SelectBestScene(nil)
	if !errors.Is(err, ErrNoScenes) {
		t.Fatalf("expected ErrNoScenes, got %v", err)
	}
}

func TestSelectBestSceneOrdering(t *testing.T) {
	d1 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 5)
	d3 := d1.AddDate(0, 0, 10)

	cases := []struct {
		name   string
		scenes []Scene
		want   string
	}{
		{
			name: "lowest_cloud_wins",
			scenes: []Scene{
				{ID: "a", CloudCover: 40, CapturedAt: d3},
				{ID: "b", CloudCover: 5, CapturedAt: d1},
			},
			want: "b",
		},
		{
			// Equal cloud cover: the more recent capture must win,
			// regardless of input order.
			name: "tie_breaks_on_recency",
			scenes: []Scene{
				{ID: "cloudy", CloudCover: 10, CapturedAt: d1},
				{ID: "older", CloudCover: 5, CapturedAt: d2},
				{ID: "newer", CloudCover: 5, CapturedAt: d3},
			},
			want: "newer",
		},
		{
			name: "tie_break_input_order_reversed",
			scenes: []Scene{
				{ID: "newer", CloudCover: 5, CapturedAt: d3},
				{ID: "older", CloudCover: 5, CapturedAt: d2},
				{ID: "cloudy", CloudCover: 10, CapturedAt: d1},
			},
			want: "newer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SelectBestScene(tc.scenes)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tc.want {
				t.Fatalf("expected scene %q, got %q", tc.want, got.ID)
			}
		})
	}
}
