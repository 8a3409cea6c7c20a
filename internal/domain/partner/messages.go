package partner

// Field messages shared by request validation and storage constraint translation
const (
	MsgReferenceTaken   = "The reference has already been taken."
	MsgNameTaken        = "The name has already been taken."
	MsgCategoryNotFound = "The selected customer category id is invalid."
	MsgCustomerNotFound = "The selected customer id is invalid."
)
