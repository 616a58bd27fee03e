package detector

import (
	"fmt"

	"github.com/arloliu/saxbitmap/bitmap"
)

// Analysis is the outcome of one cycle.
type Analysis struct {
	// Score is the squared distance between the two bitmaps; 0 means identical.
	Score float64 `json:"score"`
	// LeadBitmap summarizes the lead window.
	LeadBitmap bitmap.Bitmap `json:"lead_bitmap"`
	// LagBitmap summarizes the lag window.
	LagBitmap bitmap.Bitmap `json:"lag_bitmap"`
}

func (a Analysis) String() string {
	return fmt.Sprintf("Analysis{score: %.6g, side: %d}", a.Score, a.LeadBitmap.Side())
}
