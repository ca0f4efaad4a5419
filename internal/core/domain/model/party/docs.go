// Package party models the two sides of a shipment: the sender that hands parcels in
// and the customers that receive them.
//
// A Party combines contact details with a delivery endpoint. DeliveryType selects
// which endpoint fields are authoritative:
//
//	Locker  -> lockerID
//	Address -> Address.Street, Address.City, Address.Province
//
// NewParty enforces the required-field policy. RestoreParty rebuilds a stored party
// without validation so that incomplete legacy records still load; callers that
// need a usable endpoint check it with ValidateEndpoint.
package party
