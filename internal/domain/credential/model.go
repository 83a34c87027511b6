package credential

// Record is a stored account. Password is kept in clear: the store is a demo
// fixture, not an identity provider.
type Record struct {
	ID           string
	Name         string
	Email        string
	Password     string
	ProfileImage string
}

// Seed is the account every fresh store starts with.
var Seed = []Record{
	{
		ID:           "1",
		Name:         "John Doe",
		Email:        "user@example.com",
		Password:     "password",
		ProfileImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
	},
}
