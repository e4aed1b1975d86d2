package dto

// Price and stock arrive as either JSON numbers or numeric strings
// depending on the client; the validation layer coerces them.
type ProductRequest struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Price          interface{} `json:"price"`
	Category       string      `json:"category"`
	Stock          interface{} `json:"stock"`
	Specifications interface{} `json:"specifications"`
	Images         []string    `json:"images"`
	MainImageIndex int         `json:"mainImageIndex"`
}
