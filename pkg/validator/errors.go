package validator

import "errors"

// ErrValidationFailed matches every *Failure via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Message codes. They are translation keys, never shown to users as-is.
const (
	CodeRequired         = "validation.is_required"
	CodeEmpty            = "validation.is_empty"
	CodeTooLong          = "validation.too_long"
	CodeTooShort         = "validation.too_short"
	CodeTooManyBytes     = "validation.too_many_bytes"
	CodeBoolean          = "validation.is_boolean"
	CodeInteger          = "validation.is_integer"
	CodePositive         = "validation.is_positive"
	CodeOutOfRange       = "validation.out_of_range"
	CodeUUID             = "validation.is_uuid"
	CodeUUIDList         = "validation.is_uuid_list"
	CodeDate             = "validation.is_date"
	CodeDateTime         = "validation.is_datetime"
	CodePresentOrFuture  = "validation.is_present_or_future"
	CodeEnum             = "validation.is_enum"
	CodeURL              = "validation.is_url"
	CodeEmail            = "validation.is_email"
	CodeTimezoneOffset   = "validation.is_timezone_offset"
	CodeDoesNotExist     = "validation.do_not_exist"
	CodeDoesNotExistList = "validation.do_not_exist_list"
)
