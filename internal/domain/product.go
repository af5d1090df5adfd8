package domain

// Product is one inventory item. ID is assigned server-side at creation
// time and never changes afterwards.
type Product struct {
	ID          string  `json:"ID" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	ImageURL    string  `json:"imageUrl" bson:"image_url"`
}

// MissingFields lists the required request fields that are unset. Price
// counts as missing unless strictly positive.
func (p Product) MissingFields() []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.ImageURL == "" {
		missing = append(missing, "imageUrl")
	}
	if p.Price <= 0 {
		missing = append(missing, "price")
	}
	return missing
}
