// Package menu provides the menu item aggregate and its value objects.
//
// The package includes:
//   - Item: An immutable purchasable product with an id, unique name, price and category
//   - Category: The fixed set of menu sections (Main Course, Appetizer, Dessert, Beverage)
//
// Key business rules:
//   - Names are non-empty; uniqueness across the catalog is enforced by the catalog
//   - Prices are finite and greater than 0
//   - Items are never mutated or removed after they are added
package menu
