package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrAccountAlreadyVerified = errors.New("account is already verified")
	ErrInvalidOtp             = errors.New("invalid one-time code")
	ErrOtpExpired             = errors.New("one-time code expired")
	ErrOtpDeliveryFailed      = errors.New("one-time code delivery failed")

	ErrPasswordHashingFailed = errors.New("password hashing failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
