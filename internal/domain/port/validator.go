package port

import "dexinfo.com/internal/domain/entity"

// RequestValidator is the port for validating token transactions requests
type RequestValidator interface {
	ValidateTransactionsRequest(chainRaw, address string) (entity.ChainID, string, error)
}
