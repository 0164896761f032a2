package domain

// DefaultItems is the starter catalog loaded into an empty store so a
// fresh install has something to sell.
func DefaultItems() []Item {
	return []Item{
		{ID: 1, Name: "Masala Chai", Category: "Tea", Price: 15, Description: "Spiced Indian tea with milk", Image: "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=400", Status: StatusActive},
		{ID: 2, Name: "Cappuccino", Category: "Coffee", Price: 50, Description: "Espresso with steamed milk foam", Image: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=400", Status: StatusActive},
		{ID: 3, Name: "Vada", Category: "Snacks", Price: 20, Description: "Crispy lentil fritters", Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400", Status: StatusActive},
		{ID: 4, Name: "Chicken Puff", Category: "Snacks", Price: 35, Description: "Flaky pastry with chicken filling", Image: "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=400", Status: StatusActive},
		{ID: 5, Name: "Chocolate Cake", Category: "Cake", Price: 250, Description: "Rich chocolate layer cake", Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400", Status: StatusActive},
		{ID: 6, Name: "Butter Cookies", Category: "Cookies", Price: 180, Description: "Crispy butter cookies", Image: "https://images.unsplash.com/photo-1599599810769-bcde5a160d32?w=400", Status: StatusActive},
		{ID: 7, Name: "Dark Chocolate", Category: "Chocolates", Price: 120, Description: "Premium dark chocolate bar", Image: "https://images.unsplash.com/photo-1606312619070-d48b4cbc6b7c?w=400", Status: StatusActive},
		{ID: 8, Name: "Samosa", Category: "Snacks", Price: 25, Description: "Spiced potato filled pastry", Image: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400", Status: StatusActive},
		{ID: 9, Name: "Cold Coffee", Category: "Drinks", Price: 60, Description: "Iced coffee with cream", Image: "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400", Status: StatusActive},
		{ID: 10, Name: "Vanilla Cake", Category: "Cake", Price: 220, Description: "Soft vanilla sponge cake", Image: "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=400", Status: StatusActive},
	}
}
