package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResourceMessages(t *testing.T) {
	assert.Equal(t, ResourceMessages{
		Listed:       "Customers retrieved successfully",
		Created:      "Customer created successfully",
		Retrieved:    "Customer retrieved successfully",
		Updated:      "Customer updated successfully",
		Deleted:      "Customer deleted successfully",
		NotFound:     "Customer not found",
		InvalidID:    "Invalid customer id",
		ListFailed:   "Error retrieving customers",
		CreateFailed: "Error creating customer",
		ShowFailed:   "Error retrieving customer",
		UpdateFailed: "Error updating customer",
		DeleteFailed: "Error deleting customer",
	}, CustomerMessages)

	assert.Equal(t, "Customer categories retrieved successfully", CustomerCategoryMessages.Listed)
	assert.Equal(t, "Error deleting customer category", CustomerCategoryMessages.DeleteFailed)
	assert.Equal(t, "Contact updated successfully", ContactMessages.Updated)
}

func TestNewErrorResponse(t *testing.T) {
	detail := errors.New("connection refused")

	exposed, err := json.Marshal(NewErrorResponse("Error deleting customer", detail, true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Error deleting customer","error":"connection refused"}`, string(exposed))

	hidden, err := json.Marshal(NewErrorResponse("Error deleting customer", detail, false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Error deleting customer"}`, string(hidden))
}

func TestNewValidationErrorResponse(t *testing.T) {
	body, err := json.Marshal(NewValidationErrorResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"The given data was invalid.","errors":{}}`, string(body))

	body, err = json.Marshal(NewValidationErrorResponse(map[string][]string{"name": {"The name field is required."}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"The given data was invalid.","errors":{"name":["The name field is required."]}}`, string(body))
}

func TestResponse_EmptyListIsKept(t *testing.T) {
	body, err := json.Marshal(NewResponse("Customers retrieved successfully", []string{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Customers retrieved successfully","data":[]}`, string(body))
}
