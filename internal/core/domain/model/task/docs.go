// Package task contains the ShipperTask aggregate: the unit of physical
// work dispatched to a shipper for one order, with its own lifecycle
// independent of the shipment event log.
package task
