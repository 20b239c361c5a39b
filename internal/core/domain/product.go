package domain

// Product is a top-up catalog entry. Price is in the smallest currency unit.
type Product struct {
	ID    string
	Name  string
	Price int64
}
