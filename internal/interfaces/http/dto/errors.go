package dto

import "strings"

// Generic error messages
const (
	MsgValidationFailed = "The given data was invalid."
	MsgMalformedJSON    = "Malformed JSON request body"
	MsgRequestTooLarge  = "Request body exceeds maximum allowed size"
	MsgInternalError    = "Internal server error"
)

// ResourceMessages holds the response messages of one REST resource
type ResourceMessages struct {
	Listed       string
	Created      string
	Retrieved    string
	Updated      string
	Deleted      string
	NotFound     string
	InvalidID    string
	ListFailed   string
	CreateFailed string
	ShowFailed   string
	UpdateFailed string
	DeleteFailed string
}

// NewResourceMessages builds the messages for a resource from its singular
// and plural display names, e.g. ("Customer", "Customers").
func NewResourceMessages(singular, plural string) ResourceMessages {
	lower := strings.ToLower(singular)
	return ResourceMessages{
		Listed:       plural + " retrieved successfully",
		Created:      singular + " created successfully",
		Retrieved:    singular + " retrieved successfully",
		Updated:      singular + " updated successfully",
		Deleted:      singular + " deleted successfully",
		NotFound:     singular + " not found",
		InvalidID:    "Invalid " + lower + " id",
		ListFailed:   "Error retrieving " + strings.ToLower(plural),
		CreateFailed: "Error creating " + lower,
		ShowFailed:   "Error retrieving " + lower,
		UpdateFailed: "Error updating " + lower,
		DeleteFailed: "Error deleting " + lower,
	}
}

// Messages of the partner resources
var (
	CustomerMessages         = NewResourceMessages("Customer", "Customers")
	CustomerCategoryMessages = NewResourceMessages("Customer category", "Customer categories")
	ContactMessages          = NewResourceMessages("Contact", "Contacts")
)
