package entity

// Role identifies the account type carried in access-token claims.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleRetailer Role = "retailer"
	RoleAdmin    Role = "admin"
)

// String returns the role as a plain string for token claims.
func (r Role) String() string {
	return string(r)
}
