package errors

import "errors"

// Доменные ошибки сидера. Команды (cmd) только логируют их и возвращают наружу.
var (
	ErrDonorNotFound      = errors.New("donor not found")
	ErrAddressNotFound    = errors.New("donor address not found")
	ErrVerificationFailed = errors.New("seed verification failed")
)
