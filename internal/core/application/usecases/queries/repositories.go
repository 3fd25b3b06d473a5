// Package queries contains read operations. Queries never stage changes:
// handlers either read through repositories without opening a transaction or
// project rows straight from the database into response types.
package queries

import (
	"shoppingcart/internal/core/ports"
)

type (
	// ReadUoW exposes the repositories queries read from.
	ReadUoW interface {
		CategoryRepository() ports.CategoryRepository
		OrderHeaderRepository() ports.OrderHeaderRepository
		OrderDetailRepository() ports.OrderDetailRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

// NewReadUoWFactory narrows a full unit of work factory to the query handlers.
func NewReadUoWFactory(factory ports.UnitOfWorkFactory) ReadUoWFactory {
	return readUoWFactory{factory: factory}
}

type readUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f readUoWFactory) Create() ReadUoW {
	return f.factory.Create()
}
