package sorting

import (
	"fmt"
	"strings"
)

type Order byte

const (
	OrderAscending Order = iota
	OrderDescending
)

var Orders = []Order{OrderAscending, OrderDescending}

func (o Order) String() string {
	switch o {
	case OrderAscending:
		return "ascending"
	case OrderDescending:
		return "descending"
	}
	return fmt.Sprintf("order(%d)", byte(o))
}

func (o Order) Valid() bool {
	return o == OrderAscending || o == OrderDescending
}

func (o Order) Toggle() Order {
	if o == OrderAscending {
		return OrderDescending
	}
	return OrderAscending
}

func ParseOrder(name string) (Order, error) {
	for _, o := range Orders {
		if strings.EqualFold(o.String(), name) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w [%s]", ErrInvalidOrder, name)
}
