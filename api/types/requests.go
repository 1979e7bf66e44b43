package types

// AddToMyListRequest represents a request to save a drama
type AddToMyListRequest struct {
	DramaID  string `json:"dramaId" binding:"required" example:"41000102345"`
	Title    string `json:"title,omitempty" example:"The CEO's Secret Wife"`
	CoverURL string `json:"coverUrl,omitempty" example:"https://thumbwsrv.drmbox.xyz/cover.jpg"`
}

// RecordProgressRequest represents a watch progress update
type RecordProgressRequest struct {
	DramaID  string  `json:"dramaId" binding:"required" example:"41000102345"`
	Title    string  `json:"title,omitempty" example:"The CEO's Secret Wife"`
	CoverURL string  `json:"coverUrl,omitempty" example:"https://thumbwsrv.drmbox.xyz/cover.jpg"`
	Episode  int     `json:"episode" example:"3"`
	Progress float64 `json:"progress" example:"42.5"` // percent, 0-100
}
