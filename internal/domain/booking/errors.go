package booking

// Business error codes surfaced by the booking use cases. Handlers map these
// to HTTP statuses; everything else is an unclassified store error.
const (
	CodeEmailTaken      = "email_taken"
	CodeUserNotFound    = "user_not_found"
	CodeInvalidPassword = "invalid_password"
	CodeInvalidRole     = "invalid_role"
	CodeSlotTaken       = "slot_taken"
	CodeNoFile          = "no_file"
	CodeInvalidImage    = "invalid_image"
)
