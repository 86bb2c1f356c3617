package mock

import (
	"atlas-sorter/stack"
)

// OracleImpl lets tests override individual oracle answers. Unset functions fall back to Base.
type OracleImpl struct {
	Base                     stack.Oracle
	SameItemSameComponentsFn func(a stack.Model, b stack.Model) bool
	MaxStackSizeFn           func(m stack.Model) uint32
	DisplayNameFn            func(m stack.Model) string
	NamespaceFn              func(m stack.Model) string
	CategoryIndexFn          func(m stack.Model) (int, bool)
	RegistryIdFn             func(m stack.Model) int
}

func (o *OracleImpl) SameItemSameComponents(a stack.Model, b stack.Model) bool {
	if o.SameItemSameComponentsFn != nil {
		return o.SameItemSameComponentsFn(a, b)
	}
	return o.Base.SameItemSameComponents(a, b)
}

func (o *OracleImpl) MaxStackSize(m stack.Model) uint32 {
	if o.MaxStackSizeFn != nil {
		return o.MaxStackSizeFn(m)
	}
	return o.Base.MaxStackSize(m)
}

func (o *OracleImpl) DisplayName(m stack.Model) string {
	if o.DisplayNameFn != nil {
		return o.DisplayNameFn(m)
	}
	return o.Base.DisplayName(m)
}

func (o *OracleImpl) Namespace(m stack.Model) string {
	if o.NamespaceFn != nil {
		return o.NamespaceFn(m)
	}
	return o.Base.Namespace(m)
}

func (o *OracleImpl) CategoryIndex(m stack.Model) (int, bool) {
	if o.CategoryIndexFn != nil {
		return o.CategoryIndexFn(m)
	}
	return o.Base.CategoryIndex(m)
}

func (o *OracleImpl) RegistryId(m stack.Model) int {
	if o.RegistryIdFn != nil {
		return o.RegistryIdFn(m)
	}
	return o.Base.RegistryId(m)
}
