package httperr

import "errors"

// BusinessError é uma regra de negócio violada. O Code é estável e os
// handlers o traduzem em mensagem pt-BR ou flag de redirect.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return "business: " + e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Code devolve o código do erro de negócio em err (mesmo embrulhado),
// ou "" quando err não é de negócio.
func Code(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func IsBusiness(err error, code string) bool {
	return code != "" && Code(err) == code
}
