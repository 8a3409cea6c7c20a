package persistence

import (
	"strings"

	"github.com/crm/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// customerSearchCondition matches a customer on its own name or reference, or on
// the first or last name of any of its contacts. EXISTS keeps one row per customer
// however many contacts match.
const customerSearchCondition = `(LOWER(customers.name) LIKE ? ESCAPE '\' ` +
	`OR LOWER(customers.reference) LIKE ? ESCAPE '\' ` +
	`OR EXISTS (SELECT 1 FROM contacts WHERE contacts.customer_id = customers.id ` +
	`AND (LOWER(contacts.first_name) LIKE ? ESCAPE '\' OR LOWER(contacts.last_name) LIKE ? ESCAPE '\')))`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a case-insensitive LIKE pattern matching term anywhere,
// with the LIKE metacharacters of term escaped.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// CustomerQueryScope renders a CustomerQuery as a GORM scope on the customers table.
// Search and category filter are ANDed; either may be absent.
func CustomerQueryScope(q partner.CustomerQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.HasSearch() {
			pattern := ContainsPattern(q.Search)
			db = db.Where(customerSearchCondition, pattern, pattern, pattern, pattern)
		}
		if q.CategoryID != nil {
			db = db.Where("customers.customer_category_id = ?", *q.CategoryID)
		}
		return db.Order("customers.name ASC").Order("customers.id ASC")
	}
}

// ContactQueryScope renders a ContactQuery as a GORM scope on the contacts table
func ContactQueryScope(q partner.ContactQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.CustomerID != nil {
			db = db.Where("contacts.customer_id = ?", *q.CustomerID)
		}
		return contactOrder(db)
	}
}

func contactOrder(db *gorm.DB) *gorm.DB {
	return db.Order("contacts.last_name ASC").Order("contacts.first_name ASC").Order("contacts.id ASC")
}
