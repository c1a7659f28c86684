package application

import (
	"errors"
	"fmt"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated an order invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrUnknownClient signals the client reference did not resolve at write time.
	ErrUnknownClient = errors.New("unknown client")
	// ErrUnknownPart signals a line item part reference did not resolve at write time.
	ErrUnknownPart = errors.New("unknown part")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingClient) ||
		errors.Is(err, domain.ErrMissingPart) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, ErrUnknownClient) ||
		errors.Is(err, ErrUnknownPart) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
