package domain

// LensCategory is one of the fixed top-level community-engagement topics.
// Its subcategories are deleted with it.
type LensCategory struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	SortOrder     int               `json:"sort_order"`
	Subcategories []LensSubcategory `json:"subcategories,omitempty"`
}

type LensSubcategory struct {
	ID          uint   `json:"id"`
	CategoryID  uint   `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}
