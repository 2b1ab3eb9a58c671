package users

// UserID identifies a user.
type UserID string

// OrderID identifies an order.
type OrderID string

// UserProfile is what the profile service knows about a user.
type UserProfile struct {
	UserID UserID
	Name   string
}

func NewUserProfile(id UserID, name string) UserProfile {
	return UserProfile{UserID: id, Name: name}
}

// Order belongs to exactly one user.
type Order struct {
	Owner UserID
	ID    OrderID
}

func NewOrder(owner UserID, id OrderID) Order {
	return Order{Owner: owner, ID: id}
}

// UserInformation is the combined view returned by FetchUserInformation.
type UserInformation struct {
	Name   string
	Orders []Order
}

// NewUserInformation copies orders; a nil list becomes an empty one.
func NewUserInformation(name string, orders []Order) UserInformation {
	cp := make([]Order, len(orders))
	copy(cp, orders)
	return UserInformation{Name: name, Orders: cp}
}
