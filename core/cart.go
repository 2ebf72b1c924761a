package core

import (
	"errors"
	"fmt"
	"strconv"
)

type (
	ProductID uint
)

func (id ProductID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseProductID parses a string into a product id.
func ParseProductID(id string) (ProductID, error) {
	integerID, err := strconv.Atoi(id)
	if err != nil {
		return 0, errors.Join(ErrInvalidProductID, fmt.Errorf("cannot parse product id: %w", err))
	}
	if integerID <= 0 {
		return 0, errors.Join(ErrInvalidProductID, errors.New("product ids should be positive"))
	}
	return ProductID(integerID), nil
}

// CartAction is the mutation requested for a cart item.
type CartAction string

const (
	CartActionAdd    CartAction = "add"
	CartActionRemove CartAction = "remove"
)

// ParseCartAction parses the action of a cart button.
func ParseCartAction(action string) (CartAction, error) {
	switch CartAction(action) {
	case CartActionAdd, CartActionRemove:
		return CartAction(action), nil
	}
	return "", errors.Join(ErrInvalidCartAction, fmt.Errorf("unknown cart action %q", action))
}
