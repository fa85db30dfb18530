package backend

// RemoteUser is the user shape returned by the auth and users endpoints.
type RemoteUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Image     string `json:"image"`
	Phone     string `json:"phone,omitempty"`
}

// LoginResponse is the flattened auth payload: token plus the user fields.
type LoginResponse struct {
	Token string `json:"token"`
	RemoteUser
}

// Product is a catalog record. Fields beyond id/category are carried opaquely
// for display; the stores do not interpret them.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}

// ProductPage is a paged product listing.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// Cart is a demo order source used to seed dashboard metrics.
type Cart struct {
	ID     int     `json:"id"`
	UserID int     `json:"userId"`
	Total  float64 `json:"total"`
}

// Post is a demo activity source used to seed the recent-activity feed.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
}

type userList struct {
	Users []RemoteUser `json:"users"`
}

type cartList struct {
	Carts []Cart `json:"carts"`
}

type postList struct {
	Posts []Post `json:"posts"`
}
