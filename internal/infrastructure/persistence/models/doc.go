// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities carry no GORM tags
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers (ToDomain / XModelFromDomain) convert between the two
// 4. Relations are never declared on models; the application attaches them explicitly
//
// Structure:
// - base.go: BaseModel shared by every table
// - partner.go: customer_categories, customers and contacts
package models
