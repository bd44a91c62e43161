package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is wrapped by every error Validate returns
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks the seeded content, the server refuses to start if it fails
func Validate() error {
	var errs []error
	for _, category := range attractions {
		if category.Name == "" {
			errs = append(errs, fmt.Errorf("%w: attraction category without a name", ErrInvalidCatalog))
		}
		for _, place := range category.Places {
			if place.Name == "" || place.Description == "" {
				errs = append(errs, fmt.Errorf("%w: incomplete place in %q", ErrInvalidCatalog, category.Name))
			}
		}
	}
	for _, cuisine := range cuisines {
		if cuisine.Type == "" {
			errs = append(errs, fmt.Errorf("%w: cuisine without a type", ErrInvalidCatalog))
		}
		for _, restaurant := range cuisine.Restaurants {
			if restaurant.Rating < 0 || restaurant.Rating > MaxRating {
				errs = append(errs, fmt.Errorf("%w: %s rated %.1f, outside 0-%.0f", ErrInvalidCatalog, restaurant.Name, restaurant.Rating, MaxRating))
			}
		}
	}
	for _, tip := range tips {
		if tip.Category == "" || tip.Text == "" {
			errs = append(errs, fmt.Errorf("%w: incomplete tip", ErrInvalidCatalog))
		}
	}
	return errors.Join(errs...)
}
