package sorting

// Preference is the (method, order) pair a player sorts with.
type Preference struct {
	method Method
	order  Order
}

var DefaultPreference = Preference{method: MethodAlphabetical, order: OrderAscending}

func NewPreference(method Method, order Order) Preference {
	return Preference{method: method, order: order}
}

// ParsePreference validates serialized names. Nothing is returned unless both are known.
func ParsePreference(method string, order string) (Preference, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return Preference{}, err
	}
	o, err := ParseOrder(order)
	if err != nil {
		return Preference{}, err
	}
	return NewPreference(m, o), nil
}

func (p Preference) Method() Method {
	return p.method
}

func (p Preference) Order() Order {
	return p.order
}

func (p Preference) WithNextMethod() Preference {
	return Preference{method: p.method.Next(), order: p.order}
}

func (p Preference) WithToggledOrder() Preference {
	return Preference{method: p.method, order: p.order.Toggle()}
}

// Next steps through all eight (method, order) states: the order flips every
// step and the method advances whenever the order wraps back to ascending.
func (p Preference) Next() Preference {
	n := Preference{method: p.method, order: p.order.Toggle()}
	if p.order == OrderDescending {
		n.method = p.method.Next()
	}
	return n
}

func (p Preference) String() string {
	return p.method.String() + "/" + p.order.String()
}
