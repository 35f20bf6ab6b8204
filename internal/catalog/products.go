package catalog

// SeedProducts is the demo catalog served until a real product backend exists.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Premium Wireless Headphones",
			Price:       299.99,
			Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality.",
			Category:    "Electronics",
			Stock:       25,
			Rating:      4.8,
			Reviews:     124,
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Price:       199.99,
			Image:       "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "Advanced fitness tracking with heart rate monitoring and GPS functionality.",
			Category:    "Electronics",
			Stock:       18,
			Rating:      4.6,
			Reviews:     89,
		},
		{
			ID:          "3",
			Name:        "Organic Cotton T-Shirt",
			Price:       29.99,
			Image:       "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "Comfortable and sustainable organic cotton t-shirt in various colors.",
			Category:    "Clothing",
			Stock:       50,
			Rating:      4.4,
			Reviews:     67,
		},
		{
			ID:          "4",
			Name:        "Professional Camera Lens",
			Price:       899.99,
			Image:       "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "High-performance camera lens for professional photography and videography.",
			Category:    "Electronics",
			Stock:       8,
			Rating:      4.9,
			Reviews:     156,
		},
		{
			ID:          "5",
			Name:        "Minimalist Backpack",
			Price:       79.99,
			Image:       "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "Sleek and functional backpack perfect for work, travel, and everyday use.",
			Category:    "Accessories",
			Stock:       32,
			Rating:      4.5,
			Reviews:     43,
		},
		{
			ID:          "6",
			Name:        "Artisan Coffee Beans",
			Price:       24.99,
			Image:       "https://images.pexels.com/photos/894695/pexels-photo-894695.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "Premium single-origin coffee beans roasted to perfection.",
			Category:    "Food & Beverage",
			Stock:       75,
			Rating:      4.7,
			Reviews:     92,
		},
		{
			ID:          "7",
			Name:        "Wireless Charging Pad",
			Price:       49.99,
			Image:       "https://images.pexels.com/photos/4219654/pexels-photo-4219654.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices.",
			Category:    "Electronics",
			Stock:       40,
			Rating:      4.3,
			Reviews:     78,
		},
		{
			ID:          "8",
			Name:        "Luxury Skincare Set",
			Price:       149.99,
			Image:       "https://images.pexels.com/photos/3685530/pexels-photo-3685530.jpeg?auto=compress&cs=tinysrgb&w=500",
			Description: "Complete skincare routine with natural and organic ingredients.",
			Category:    "Beauty",
			Stock:       22,
			Rating:      4.6,
			Reviews:     134,
		},
	}
}
